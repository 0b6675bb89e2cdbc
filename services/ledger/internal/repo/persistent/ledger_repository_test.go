package persistent

import (
	"context"
	"errors"
	"sync"
	"testing"

	"content-ledger/pkg/database"
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) LedgerRepository {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	return NewLedgerRepository(db)
}

func TestContentLookups(t *testing.T) {
	repo := setupRepository(t)

	content, err := repo.GetContent(1)
	require.NoError(t, err)
	assert.Nil(t, content)

	require.NoError(t, repo.CreateContent(&entity.ContentItem{ID: 1, Creator: "alice", Price: 10, RoyaltyPercentage: 5}))
	require.NoError(t, repo.UpdateContentCreator(1, "bob"))

	content, err = repo.GetContent(1)
	require.NoError(t, err)
	assert.Equal(t, "bob", content.Creator)
	assert.Equal(t, uint64(10), content.Price)
	assert.False(t, content.CreatedAt.IsZero())
}

func TestContentIDZeroIsStored(t *testing.T) {
	repo := setupRepository(t)

	require.NoError(t, repo.CreateContent(&entity.ContentItem{ID: 0, Creator: "alice"}))
	content, err := repo.GetContent(0)
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.Equal(t, uint64(0), content.ID)
}

func TestLookupsTreatWideContentIDsAsAbsent(t *testing.T) {
	repo := setupRepository(t)
	id := uint64(1) << 63

	content, err := repo.GetContent(id)
	require.NoError(t, err)
	assert.Nil(t, content)

	granted, err := repo.HasGrant(id, "bob")
	require.NoError(t, err)
	assert.False(t, granted)

	rating, err := repo.GetRating(id, "bob")
	require.NoError(t, err)
	assert.Nil(t, rating)

	avg, err := repo.GetAvgRating(id)
	require.NoError(t, err)
	assert.Nil(t, avg)

	report, err := repo.GetReport(id, "bob")
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestPutGrant_InsertOrNoop(t *testing.T) {
	repo := setupRepository(t)
	grant := &entity.PremiumAccessGrant{ContentID: 1, UserID: "bob", Access: true}

	require.NoError(t, repo.PutGrant(grant))
	require.NoError(t, repo.PutGrant(grant))

	granted, err := repo.HasGrant(1, "bob")
	require.NoError(t, err)
	assert.True(t, granted)

	grants, err := repo.ListGrants()
	require.NoError(t, err)
	assert.Len(t, grants, 1)
}

func TestPutRoyaltyBalance_Upserts(t *testing.T) {
	repo := setupRepository(t)

	require.NoError(t, repo.PutRoyaltyBalance(&entity.RoyaltyBalance{Creator: "alice", Balance: 20}))
	require.NoError(t, repo.PutRoyaltyBalance(&entity.RoyaltyBalance{Creator: "alice", Balance: 0}))

	balance, err := repo.GetRoyaltyBalance("alice")
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, uint64(0), balance.Balance)
}

func TestPutRating_Overwrites(t *testing.T) {
	repo := setupRepository(t)

	require.NoError(t, repo.PutRating(&entity.ContentRating{ContentID: 1, UserID: "bob", Rating: 5, Timestamp: 1}))
	require.NoError(t, repo.PutRating(&entity.ContentRating{ContentID: 1, UserID: "bob", Rating: 2, Timestamp: 2}))

	rating, err := repo.GetRating(1, "bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), rating.Rating)
	assert.Equal(t, uint64(2), rating.Timestamp)
}

func TestSubscriptionUpdate(t *testing.T) {
	repo := setupRepository(t)

	require.NoError(t, repo.CreateSubscription(&entity.Subscription{Subscriber: "sub", Creator: "alice", Expiry: 10}))
	require.NoError(t, repo.UpdateSubscription(&entity.Subscription{Subscriber: "sub", Creator: "bob", Expiry: 25}))

	subscription, err := repo.GetSubscription("sub")
	require.NoError(t, err)
	assert.Equal(t, "bob", subscription.Creator)
	assert.Equal(t, uint64(25), subscription.Expiry)
}

func TestAtomic_RollsBackOnError(t *testing.T) {
	repo := setupRepository(t)
	boom := errors.New("boom")

	err := repo.Atomic(context.Background(), func(store Store) error {
		if err := store.CreateReport(&entity.ContentReport{ContentID: 1, Reporter: "r", Reason: "spam"}); err != nil {
			return err
		}
		// Writes are visible inside the call.
		report, err := store.GetReport(1, "r")
		if err != nil {
			return err
		}
		if report == nil {
			return errors.New("report not visible inside transaction")
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	report, err := repo.GetReport(1, "r")
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestAtomic_SerializesCalls(t *testing.T) {
	repo := setupRepository(t)
	require.NoError(t, repo.PutRoyaltyBalance(&entity.RoyaltyBalance{Creator: "alice"}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Atomic(context.Background(), func(store Store) error {
				balance, err := store.GetRoyaltyBalance("alice")
				if err != nil {
					return err
				}
				balance.Balance++
				return store.PutRoyaltyBalance(balance)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	balance, err := repo.GetRoyaltyBalance("alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(20), balance.Balance)
}
