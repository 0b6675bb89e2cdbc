package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"content-ledger/pkg/logger"
	"content-ledger/services/ledger/internal/entity"

	"github.com/redis/go-redis/v9"
)

const contentTTL = 10 * time.Minute

// ContentCache keeps content details in redis under "content:<id>".
type ContentCache struct {
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewContentCache(redisClient *redis.Client, logger *logger.Logger) *ContentCache {
	return &ContentCache{redisClient: redisClient, logger: logger}
}

func contentKey(id uint64) string {
	return fmt.Sprintf("content:%d", id)
}

func (c *ContentCache) Get(ctx context.Context, id uint64) (*entity.ContentItem, bool) {
	cached, err := c.redisClient.Get(ctx, contentKey(id)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Failed to read content %d from cache: %v", id, err)
		}
		return nil, false
	}

	var content entity.ContentItem
	if err := json.Unmarshal([]byte(cached), &content); err != nil {
		c.logger.Warn("Dropping unreadable cache entry for content %d: %v", id, err)
		c.Invalidate(ctx, id)
		return nil, false
	}
	return &content, true
}

func (c *ContentCache) Set(ctx context.Context, content *entity.ContentItem) {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return
	}
	if err := c.redisClient.Set(ctx, contentKey(content.ID), contentJSON, contentTTL).Err(); err != nil {
		c.logger.Warn("Failed to cache content %d: %v", content.ID, err)
	}
}

func (c *ContentCache) Invalidate(ctx context.Context, id uint64) {
	if err := c.redisClient.Del(ctx, contentKey(id)).Err(); err != nil {
		c.logger.Warn("Failed to invalidate cached content %d: %v", id, err)
	}
}
