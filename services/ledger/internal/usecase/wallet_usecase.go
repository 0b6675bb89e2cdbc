package usecase

import (
	"context"
	"fmt"

	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/repo/persistent"
)

type WalletUseCase interface {
	GetWallet(ctx context.Context, userID string) (*entity.Wallet, error)
	TopUp(ctx context.Context, call Call, userID string, amount uint64) (*entity.Wallet, error)
	GetTransactions(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, error)
}

type walletUseCase struct {
	ledgerCore
}

func NewWalletUseCase(deps Deps) WalletUseCase {
	return &walletUseCase{ledgerCore: newLedgerCore(deps)}
}

func (uc *walletUseCase) GetWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	var wallet *entity.Wallet
	err := uc.run(ctx, "getWallet", func(store persistent.Store) error {
		var err error
		wallet, err = store.GetOrCreateWallet(userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

func (uc *walletUseCase) TopUp(ctx context.Context, call Call, userID string, amount uint64) (*entity.Wallet, error) {
	var wallet *entity.Wallet
	err := uc.run(ctx, "topUp", func(store persistent.Store) error {
		// Funds enter the ledger only through the owner.
		if !uc.isOwner(call.Caller) {
			return entity.ErrNotAuthorized
		}
		if amount == 0 {
			return entity.ErrInvalidAmount
		}

		var err error
		wallet, err = store.GetOrCreateWallet(userID)
		if err != nil {
			return err
		}

		balanceBefore := wallet.Balance
		if wallet.Balance, err = checkedAdd(wallet.Balance, amount); err != nil {
			return err
		}
		if err := store.UpdateWallet(wallet); err != nil {
			return err
		}

		return store.CreateTransaction(&entity.Transaction{
			UserID:        userID,
			Type:          entity.TransactionTypeTopUp,
			Amount:        int64(amount),
			BalanceBefore: balanceBefore,
			BalanceAfter:  wallet.Balance,
			Height:        call.Height,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Wallet %s topped up by %d", userID, amount)
	return wallet, nil
}

func (uc *walletUseCase) GetTransactions(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, error) {
	transactions, err := uc.repo.GetTransactions(userID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to get transactions: %v", err)
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}
