package usecase

import (
	"context"
	"fmt"
	"strconv"

	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/repo/persistent"
)

// Purchase is the settled outcome of one premium purchase.
type Purchase struct {
	ContentID    uint64 `json:"content_id"`
	Buyer        string `json:"buyer"`
	Creator      string `json:"creator"`
	Price        uint64 `json:"price"`
	RoyaltyShare uint64 `json:"royalty_share"`
}

type AccessUseCase interface {
	PurchaseContentAccess(ctx context.Context, call Call, id uint64) (*Purchase, error)
	HasPremiumAccess(ctx context.Context, id uint64, user string) (bool, error)
}

type accessUseCase struct {
	ledgerCore
}

func NewAccessUseCase(deps Deps) AccessUseCase {
	return &accessUseCase{ledgerCore: newLedgerCore(deps)}
}

func (uc *accessUseCase) PurchaseContentAccess(ctx context.Context, call Call, id uint64) (*Purchase, error) {
	var purchase *Purchase
	err := uc.run(ctx, "purchaseContentAccess", func(store persistent.Store) error {
		content, err := store.GetContent(id)
		if err != nil {
			return err
		}
		if content == nil {
			return entity.ErrContentNotFound
		}

		if err := uc.settlement.Transfer(store, entity.Transfer{
			From:       call.Caller,
			To:         uc.custody,
			Amount:     content.Price,
			ContentID:  id,
			Height:     call.Height,
			DebitType:  entity.TransactionTypePurchase,
			CreditType: entity.TransactionTypeSale,
		}); err != nil {
			return err
		}

		// The remainder of the price stays in custody as the platform fee.
		share, err := royaltyShare(content.Price, content.RoyaltyPercentage)
		if err != nil {
			return err
		}
		if err := accrue(store, content.Creator, share); err != nil {
			return err
		}

		if err := store.PutGrant(&entity.PremiumAccessGrant{ContentID: id, UserID: call.Caller, Access: true}); err != nil {
			return err
		}

		purchase = &Purchase{
			ContentID:    id,
			Buyer:        call.Caller,
			Creator:      content.Creator,
			Price:        content.Price,
			RoyaltyShare: share,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.AddPurchaseVolume(purchase.Price)
	uc.metrics.AddRoyaltyAccrued(purchase.RoyaltyShare)
	uc.emit(entity.Event{
		Type:   entity.EventPurchaseSettled,
		Height: call.Height,
		Attributes: map[string]string{
			"contentId":    strconv.FormatUint(id, 10),
			"buyer":        purchase.Buyer,
			"creator":      purchase.Creator,
			"price":        strconv.FormatUint(purchase.Price, 10),
			"royaltyShare": strconv.FormatUint(purchase.RoyaltyShare, 10),
		},
	})
	return purchase, nil
}

func (uc *accessUseCase) HasPremiumAccess(ctx context.Context, id uint64, user string) (bool, error) {
	granted, err := uc.repo.HasGrant(id, user)
	if err != nil {
		uc.logger.Error("Failed to check access to content %d for %s: %v", id, user, err)
		return false, fmt.Errorf("failed to check access: %w", err)
	}
	return granted, nil
}
