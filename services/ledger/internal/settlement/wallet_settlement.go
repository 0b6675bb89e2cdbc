package settlement

import (
	"math"

	"content-ledger/pkg/logger"
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/repo/persistent"
)

// WalletSettlement moves value between internal wallets kept in the ledger
// database, so a transfer commits or rolls back with the calling operation.
type WalletSettlement struct {
	logger *logger.Logger
}

func NewWalletSettlement(logger *logger.Logger) *WalletSettlement {
	return &WalletSettlement{logger: logger}
}

// Transfer debits transfer.From and credits transfer.To, journaling both
// sides. Zero amounts move nothing.
func (s *WalletSettlement) Transfer(store persistent.Store, transfer entity.Transfer) error {
	if transfer.Amount == 0 {
		return nil
	}
	if transfer.Amount > math.MaxInt64 {
		return entity.ErrTransferFailed
	}

	source, err := store.GetOrCreateWallet(transfer.From)
	if err != nil {
		return err
	}
	if source.Balance < transfer.Amount {
		if s.logger != nil {
			s.logger.Warn("Transfer of %d from %s rejected: balance %d", transfer.Amount, transfer.From, source.Balance)
		}
		return entity.ErrTransferFailed
	}
	if err := s.apply(store, source, -int64(transfer.Amount), transfer, transfer.DebitType); err != nil {
		return err
	}

	// Read after the debit so a self-transfer sees the debited balance.
	target, err := store.GetOrCreateWallet(transfer.To)
	if err != nil {
		return err
	}
	if target.Balance > math.MaxInt64-transfer.Amount {
		return entity.ErrTransferFailed
	}
	return s.apply(store, target, int64(transfer.Amount), transfer, transfer.CreditType)
}

func (s *WalletSettlement) apply(store persistent.Store, wallet *entity.Wallet, delta int64, transfer entity.Transfer, txType entity.TransactionType) error {
	balanceBefore := wallet.Balance
	if delta < 0 {
		wallet.Balance -= uint64(-delta)
	} else {
		wallet.Balance += uint64(delta)
	}
	if err := store.UpdateWallet(wallet); err != nil {
		return err
	}

	return store.CreateTransaction(&entity.Transaction{
		UserID:        wallet.UserID,
		ContentID:     transfer.ContentID,
		Type:          txType,
		Amount:        delta,
		BalanceBefore: balanceBefore,
		BalanceAfter:  wallet.Balance,
		Height:        transfer.Height,
	})
}
