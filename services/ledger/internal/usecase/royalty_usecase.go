package usecase

import (
	"context"
	"fmt"
	"strconv"

	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/repo/persistent"
)

type RoyaltyUseCase interface {
	GetRoyaltyBalance(ctx context.Context, creator string) (uint64, error)
	// WithdrawRoyalties pays the caller's whole accrued balance out of custody
	// and returns the amount paid.
	WithdrawRoyalties(ctx context.Context, call Call) (uint64, error)
}

type royaltyUseCase struct {
	ledgerCore
}

func NewRoyaltyUseCase(deps Deps) RoyaltyUseCase {
	return &royaltyUseCase{ledgerCore: newLedgerCore(deps)}
}

func (uc *royaltyUseCase) GetRoyaltyBalance(ctx context.Context, creator string) (uint64, error) {
	balance, err := uc.repo.GetRoyaltyBalance(creator)
	if err != nil {
		uc.logger.Error("Failed to get royalty balance for %s: %v", creator, err)
		return 0, fmt.Errorf("failed to get royalty balance: %w", err)
	}
	if balance == nil {
		return 0, nil
	}
	return balance.Balance, nil
}

func (uc *royaltyUseCase) WithdrawRoyalties(ctx context.Context, call Call) (uint64, error) {
	var amount uint64
	err := uc.run(ctx, "withdrawRoyalties", func(store persistent.Store) error {
		balance, err := store.GetRoyaltyBalance(call.Caller)
		if err != nil {
			return err
		}
		if balance == nil || balance.Balance == 0 {
			return entity.ErrInsufficientBalance
		}

		amount = balance.Balance
		// Zero the balance before paying so the transfer sees it already spent.
		balance.Balance = 0
		if err := store.PutRoyaltyBalance(balance); err != nil {
			return err
		}

		return uc.settlement.Transfer(store, entity.Transfer{
			From:       uc.custody,
			To:         call.Caller,
			Amount:     amount,
			Height:     call.Height,
			DebitType:  entity.TransactionTypeRoyaltyPayout,
			CreditType: entity.TransactionTypeRoyaltyPayout,
		})
	})
	if err != nil {
		return 0, err
	}

	uc.metrics.AddRoyaltyWithdrawn(amount)
	uc.emit(entity.Event{
		Type:   entity.EventRoyaltyWithdrawn,
		Height: call.Height,
		Attributes: map[string]string{
			"creator": call.Caller,
			"amount":  strconv.FormatUint(amount, 10),
		},
	})
	return amount, nil
}

// accrue adds amount to the creator's royalty balance, creating the record on
// first accrual.
func accrue(store persistent.Store, creator string, amount uint64) error {
	balance, err := store.GetRoyaltyBalance(creator)
	if err != nil {
		return err
	}
	if balance == nil {
		balance = &entity.RoyaltyBalance{Creator: creator}
	}

	total, err := checkedAdd(balance.Balance, amount)
	if err != nil {
		return err
	}
	balance.Balance = total
	return store.PutRoyaltyBalance(balance)
}
