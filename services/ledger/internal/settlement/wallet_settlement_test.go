package settlement

import (
	"context"
	"io"
	"testing"

	"content-ledger/pkg/database"
	"content-ledger/pkg/logger"
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/model"
	"content-ledger/services/ledger/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) persistent.LedgerRepository {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	return persistent.NewLedgerRepository(db)
}

func seedWallet(t *testing.T, repo persistent.LedgerRepository, userID string, balance uint64) {
	t.Helper()
	wallet, err := repo.GetOrCreateWallet(userID)
	require.NoError(t, err)
	wallet.Balance = balance
	require.NoError(t, repo.UpdateWallet(wallet))
}

func balanceOf(t *testing.T, repo persistent.LedgerRepository, userID string) uint64 {
	t.Helper()
	wallet, err := repo.GetOrCreateWallet(userID)
	require.NoError(t, err)
	return wallet.Balance
}

func TestTransfer_MovesFundsAndJournals(t *testing.T) {
	repo := setupRepo(t)
	settlement := NewWalletSettlement(logger.NewWithWriter(io.Discard))
	seedWallet(t, repo, "buyer", 100)

	err := repo.Atomic(context.Background(), func(store persistent.Store) error {
		return settlement.Transfer(store, entity.Transfer{
			From:       "buyer",
			To:         "custody",
			Amount:     60,
			ContentID:  4,
			Height:     12,
			DebitType:  entity.TransactionTypePurchase,
			CreditType: entity.TransactionTypeSale,
		})
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(40), balanceOf(t, repo, "buyer"))
	assert.Equal(t, uint64(60), balanceOf(t, repo, "custody"))

	debits, err := repo.GetTransactions("buyer", 0, 0)
	require.NoError(t, err)
	require.Len(t, debits, 1)
	assert.Equal(t, int64(-60), debits[0].Amount)
	assert.Equal(t, entity.TransactionTypePurchase, debits[0].Type)
	assert.Equal(t, uint64(100), debits[0].BalanceBefore)
	assert.Equal(t, uint64(40), debits[0].BalanceAfter)
	assert.Equal(t, uint64(4), debits[0].ContentID)

	credits, err := repo.GetTransactions("custody", 0, 0)
	require.NoError(t, err)
	require.Len(t, credits, 1)
	assert.Equal(t, int64(60), credits[0].Amount)
	assert.Equal(t, entity.TransactionTypeSale, credits[0].Type)
	assert.Equal(t, uint64(12), credits[0].Height)
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	repo := setupRepo(t)
	settlement := NewWalletSettlement(logger.NewWithWriter(io.Discard))
	seedWallet(t, repo, "buyer", 10)

	err := repo.Atomic(context.Background(), func(store persistent.Store) error {
		return settlement.Transfer(store, entity.Transfer{From: "buyer", To: "custody", Amount: 11})
	})
	assert.ErrorIs(t, err, entity.ErrTransferFailed)
	assert.Equal(t, uint64(10), balanceOf(t, repo, "buyer"))

	transactions, err := repo.GetTransactions("buyer", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestTransfer_ZeroAmountIsNoop(t *testing.T) {
	repo := setupRepo(t)
	settlement := NewWalletSettlement(nil)

	err := repo.Atomic(context.Background(), func(store persistent.Store) error {
		return settlement.Transfer(store, entity.Transfer{From: "empty", To: "custody", Amount: 0})
	})
	require.NoError(t, err)

	transactions, err := repo.GetTransactions("empty", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestTransfer_SelfTransferKeepsBalance(t *testing.T) {
	repo := setupRepo(t)
	settlement := NewWalletSettlement(nil)
	seedWallet(t, repo, "custody", 30)

	err := repo.Atomic(context.Background(), func(store persistent.Store) error {
		return settlement.Transfer(store, entity.Transfer{From: "custody", To: "custody", Amount: 30})
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(30), balanceOf(t, repo, "custody"))
}
