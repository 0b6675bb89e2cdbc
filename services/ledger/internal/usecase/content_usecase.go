package usecase

import (
	"context"
	"fmt"
	"strconv"

	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/repo/persistent"
)

type ContentUseCase interface {
	CreateContent(ctx context.Context, call Call, id, price, royaltyPercentage uint64) (*entity.ContentItem, error)
	CreatePremiumContent(ctx context.Context, call Call, id, price, royaltyPercentage uint64) (*entity.ContentItem, error)
	TransferContentOwnership(ctx context.Context, call Call, id uint64, newOwner string) (*entity.ContentItem, error)
	// GetContentDetails returns nil when no content has the id.
	GetContentDetails(ctx context.Context, id uint64) (*entity.ContentItem, error)
}

type contentUseCase struct {
	ledgerCore
}

func NewContentUseCase(deps Deps) ContentUseCase {
	return &contentUseCase{ledgerCore: newLedgerCore(deps)}
}

func (uc *contentUseCase) CreateContent(ctx context.Context, call Call, id, price, royaltyPercentage uint64) (*entity.ContentItem, error) {
	return uc.insertContent(ctx, "createContent", call, id, price, royaltyPercentage, func() error {
		if !uc.isOwner(call.Caller) {
			return entity.ErrNotAuthorized
		}
		return nil
	})
}

func (uc *contentUseCase) CreatePremiumContent(ctx context.Context, call Call, id, price, royaltyPercentage uint64) (*entity.ContentItem, error) {
	return uc.insertContent(ctx, "createPremiumContent", call, id, price, royaltyPercentage, func() error {
		if royaltyPercentage == 0 || royaltyPercentage > entity.MaxPremiumRoyaltyPercentage {
			return entity.ErrInvalidRoyalty
		}
		return nil
	})
}

func (uc *contentUseCase) insertContent(ctx context.Context, operation string, call Call, id, price, royaltyPercentage uint64, check func() error) (*entity.ContentItem, error) {
	var content *entity.ContentItem
	err := uc.run(ctx, operation, func(store persistent.Store) error {
		if err := check(); err != nil {
			return err
		}
		if id > maxLedgerValue || price > maxLedgerValue || royaltyPercentage > maxLedgerValue {
			return errArithmeticOverflow
		}

		existing, err := store.GetContent(id)
		if err != nil {
			return err
		}
		// Duplicate ids are rejected with the not-found code.
		if existing != nil {
			return entity.ErrContentNotFound
		}

		content = &entity.ContentItem{
			ID:                id,
			Creator:           call.Caller,
			Price:             price,
			RoyaltyPercentage: royaltyPercentage,
		}
		return store.CreateContent(content)
	})
	if err != nil {
		return nil, err
	}

	uc.emit(entity.Event{
		Type:   entity.EventContentCreated,
		Height: call.Height,
		Attributes: map[string]string{
			"contentId":         strconv.FormatUint(content.ID, 10),
			"creator":           content.Creator,
			"price":             strconv.FormatUint(content.Price, 10),
			"royaltyPercentage": strconv.FormatUint(content.RoyaltyPercentage, 10),
		},
	})
	return content, nil
}

func (uc *contentUseCase) TransferContentOwnership(ctx context.Context, call Call, id uint64, newOwner string) (*entity.ContentItem, error) {
	var content *entity.ContentItem
	var previous string
	err := uc.run(ctx, "transferContentOwnership", func(store persistent.Store) error {
		var err error
		content, err = store.GetContent(id)
		if err != nil {
			return err
		}
		if content == nil {
			return entity.ErrContentNotFound
		}
		if call.Caller != content.Creator {
			return entity.ErrNotAuthorized
		}

		previous = content.Creator
		if err := store.UpdateContentCreator(id, newOwner); err != nil {
			return err
		}
		content.Creator = newOwner
		// Dropped while the lock is held so no reader can refill the old owner.
		if uc.cache != nil {
			uc.cache.Invalidate(ctx, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.emit(entity.Event{
		Type:   entity.EventContentOwnershipChanged,
		Height: call.Height,
		Attributes: map[string]string{
			"contentId": strconv.FormatUint(id, 10),
			"from":      previous,
			"to":        newOwner,
		},
	})
	return content, nil
}

func (uc *contentUseCase) GetContentDetails(ctx context.Context, id uint64) (*entity.ContentItem, error) {
	if uc.cache != nil {
		if content, ok := uc.cache.Get(ctx, id); ok {
			return content, nil
		}
	}

	// The miss path fills the cache inside the ledger lock so a concurrent
	// ownership transfer cannot be overwritten by a stale read.
	var content *entity.ContentItem
	err := uc.repo.Atomic(ctx, func(store persistent.Store) error {
		var err error
		content, err = store.GetContent(id)
		if err != nil {
			return err
		}
		if content != nil && uc.cache != nil {
			uc.cache.Set(ctx, content)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("Failed to get content %d: %v", id, err)
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return content, nil
}
