package persistent

import (
	"context"
	"errors"
	"math"
	"sync"

	"content-ledger/services/ledger/internal/entity"

	"gorm.io/gorm"
)

// Store is the ledger's table access. Lookups return (nil, nil) when the
// record is absent. A Store handed out by Atomic is bound to that call's
// transaction.
type Store interface {
	GetContent(id uint64) (*entity.ContentItem, error)
	CreateContent(content *entity.ContentItem) error
	UpdateContentCreator(id uint64, creator string) error
	ListContents() ([]*entity.ContentItem, error)

	GetRoyaltyBalance(creator string) (*entity.RoyaltyBalance, error)
	PutRoyaltyBalance(balance *entity.RoyaltyBalance) error
	ListRoyaltyBalances() ([]*entity.RoyaltyBalance, error)

	HasGrant(contentID uint64, userID string) (bool, error)
	PutGrant(grant *entity.PremiumAccessGrant) error
	ListGrants() ([]*entity.PremiumAccessGrant, error)

	GetSubscription(subscriber string) (*entity.Subscription, error)
	CreateSubscription(subscription *entity.Subscription) error
	UpdateSubscription(subscription *entity.Subscription) error
	ListSubscriptions() ([]*entity.Subscription, error)

	GetRating(contentID uint64, userID string) (*entity.ContentRating, error)
	PutRating(rating *entity.ContentRating) error
	GetAvgRating(contentID uint64) (*entity.ContentAvgRating, error)
	PutAvgRating(avg *entity.ContentAvgRating) error
	ListRatings() ([]*entity.ContentRating, error)
	ListAvgRatings() ([]*entity.ContentAvgRating, error)

	GetReport(contentID uint64, reporter string) (*entity.ContentReport, error)
	CreateReport(report *entity.ContentReport) error
	ListReports() ([]*entity.ContentReport, error)

	GetOrCreateWallet(userID string) (*entity.Wallet, error)
	UpdateWallet(wallet *entity.Wallet) error
	CreateTransaction(transaction *entity.Transaction) error
	GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error)
}

// LedgerRepository is the shared ledger store. Reads through the embedded
// Store see committed state only.
type LedgerRepository interface {
	Store
	// Atomic runs fn as one serialized call inside a database transaction.
	// Any error from fn rolls back every write fn made.
	Atomic(ctx context.Context, fn func(store Store) error) error
}

type ledgerRepository struct {
	gormStore
	mu sync.Mutex
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{gormStore: gormStore{db: db}}
}

func (r *ledgerRepository) Atomic(ctx context.Context, fn func(store Store) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

type gormStore struct {
	db *gorm.DB
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// storableID reports whether a content id fits the signed 64-bit key
// columns. Wider ids are never written, so lookups treat them as absent.
func storableID(id uint64) bool {
	return id <= math.MaxInt64
}
