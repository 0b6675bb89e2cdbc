package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"content-ledger/pkg/logger"
	"content-ledger/services/ledger/internal/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestContentKey(t *testing.T) {
	assert.Equal(t, "content:42", contentKey(42))
}

func TestContentCache_UnreachableRedisIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	cache := NewContentCache(client, logger.NewWithWriter(io.Discard))
	ctx := context.Background()

	cache.Set(ctx, &entity.ContentItem{ID: 1, Creator: "alice"})
	content, ok := cache.Get(ctx, 1)
	assert.False(t, ok)
	assert.Nil(t, content)

	assert.NotPanics(t, func() { cache.Invalidate(ctx, 1) })
}
