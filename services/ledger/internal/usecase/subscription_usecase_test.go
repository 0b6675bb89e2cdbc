package usecase

import (
	"context"
	"testing"

	"content-ledger/services/ledger/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantSubscription(t *testing.T) {
	f := newLedgerFixture(t)
	uc := NewSubscriptionUseCase(f.deps)
	ctx := context.Background()

	_, err := uc.GrantSubscription(ctx, Call{Caller: "sub", Height: 10}, "sub", "alice", 100)
	assert.ErrorIs(t, err, entity.ErrNotAuthorized)

	_, err = uc.GrantSubscription(ctx, Call{Caller: testOwner, Height: 10}, "sub", "alice", 0)
	assert.ErrorIs(t, err, entity.ErrInvalidAmount)

	subscription, err := uc.GrantSubscription(ctx, Call{Caller: testOwner, Height: 10}, "sub", "alice", 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(110), subscription.Expiry)
	assert.Equal(t, "alice", subscription.Creator)

	// One record per subscriber regardless of creator.
	_, err = uc.GrantSubscription(ctx, Call{Caller: testOwner, Height: 11}, "sub", "bob", 50)
	assert.ErrorIs(t, err, entity.ErrSubscriptionExists)

	assert.Equal(t, []string{entity.EventSubscriptionGranted}, f.events.types())
}

func TestExtendSubscription_Authorization(t *testing.T) {
	f := newLedgerFixture(t)
	uc := NewSubscriptionUseCase(f.deps)
	ctx := context.Background()
	_, err := uc.GrantSubscription(ctx, Call{Caller: testOwner, Height: 10}, "sub", "alice", 100)
	require.NoError(t, err)

	_, err = uc.ExtendSubscription(ctx, Call{Caller: "stranger", Height: 20}, "sub", "alice", 10)
	assert.ErrorIs(t, err, entity.ErrNotAuthorized)

	extended, err := uc.ExtendSubscription(ctx, Call{Caller: "sub", Height: 20}, "sub", "alice", 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), extended.Expiry)

	extended, err = uc.ExtendSubscription(ctx, Call{Caller: testOwner, Height: 21}, "sub", "alice", 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(125), extended.Expiry)
}

func TestExtendSubscription_MissingRecord(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := NewSubscriptionUseCase(f.deps).ExtendSubscription(context.Background(), Call{Caller: "sub", Height: 1}, "sub", "alice", 10)
	assert.ErrorIs(t, err, entity.ErrSubscriptionNotFound)
}

func TestExtendSubscription_MonotonicAndReassignsCreator(t *testing.T) {
	f := newLedgerFixture(t)
	uc := NewSubscriptionUseCase(f.deps)
	ctx := context.Background()
	_, err := uc.GrantSubscription(ctx, Call{Caller: testOwner, Height: 10}, "sub", "alice", 100)
	require.NoError(t, err)

	extended, err := uc.ExtendSubscription(ctx, Call{Caller: "sub", Height: 50}, "sub", "bob", 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(110), extended.Expiry)
	assert.Equal(t, "bob", extended.Creator)

	stored, err := uc.GetSubscription(ctx, "sub")
	require.NoError(t, err)
	assert.Equal(t, "bob", stored.Creator)
	assert.Equal(t, uint64(110), stored.Expiry)
}

func TestExtendSubscription_OverflowLeavesExpiry(t *testing.T) {
	f := newLedgerFixture(t)
	uc := NewSubscriptionUseCase(f.deps)
	ctx := context.Background()
	_, err := uc.GrantSubscription(ctx, Call{Caller: testOwner, Height: 0}, "sub", "alice", maxLedgerValue-1)
	require.NoError(t, err)

	_, err = uc.ExtendSubscription(ctx, Call{Caller: "sub", Height: 1}, "sub", "alice", 2)
	assert.ErrorIs(t, err, errArithmeticOverflow)

	stored, err := uc.GetSubscription(ctx, "sub")
	require.NoError(t, err)
	assert.Equal(t, uint64(maxLedgerValue-1), stored.Expiry)
}

func TestIsSubscriptionActive(t *testing.T) {
	f := newLedgerFixture(t)
	uc := NewSubscriptionUseCase(f.deps)
	ctx := context.Background()
	_, err := uc.GrantSubscription(ctx, Call{Caller: testOwner, Height: 10}, "sub", "alice", 5)
	require.NoError(t, err)

	tests := []struct {
		subscriber string
		height     uint64
		expected   bool
	}{
		{"sub", 10, true},
		{"sub", 14, true},
		{"sub", 15, false},
		{"other", 10, false},
	}
	for _, tt := range tests {
		active, err := uc.IsSubscriptionActive(ctx, tt.subscriber, tt.height)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, active, "%s at %d", tt.subscriber, tt.height)
	}
}
