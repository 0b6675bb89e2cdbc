package usecase

import (
	"context"
	"fmt"
	"strconv"

	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/repo/persistent"
)

type RatingUseCase interface {
	RateContent(ctx context.Context, call Call, id, rating uint64) (*entity.ContentAvgRating, error)
	// GetAverageRating returns a zero aggregate for unrated content.
	GetAverageRating(ctx context.Context, id uint64) (*entity.ContentAvgRating, error)
	GetRating(ctx context.Context, id uint64, user string) (*entity.ContentRating, error)
}

type ratingUseCase struct {
	ledgerCore
}

func NewRatingUseCase(deps Deps) RatingUseCase {
	return &ratingUseCase{ledgerCore: newLedgerCore(deps)}
}

func (uc *ratingUseCase) RateContent(ctx context.Context, call Call, id, rating uint64) (*entity.ContentAvgRating, error) {
	var avg *entity.ContentAvgRating
	err := uc.run(ctx, "rateContent", func(store persistent.Store) error {
		content, err := store.GetContent(id)
		if err != nil {
			return err
		}
		if content == nil {
			return entity.ErrContentNotFound
		}
		if rating < entity.MinRating || rating > entity.MaxRating {
			return entity.ErrInvalidRating
		}
		granted, err := store.HasGrant(id, call.Caller)
		if err != nil {
			return err
		}
		if !granted {
			return entity.ErrNotAuthorized
		}

		if err := store.PutRating(&entity.ContentRating{
			ContentID: id,
			UserID:    call.Caller,
			Rating:    rating,
			Timestamp: call.Height,
		}); err != nil {
			return err
		}

		avg, err = store.GetAvgRating(id)
		if err != nil {
			return err
		}
		if avg == nil {
			avg = &entity.ContentAvgRating{ContentID: id}
		}
		// Repeat ratings count again; the aggregate is not reconciled with
		// the overwritten per-user record.
		if avg.TotalRating, err = checkedAdd(avg.TotalRating, rating); err != nil {
			return err
		}
		if avg.Count, err = checkedAdd(avg.Count, 1); err != nil {
			return err
		}
		avg.AvgRating = avg.TotalRating / avg.Count
		return store.PutAvgRating(avg)
	})
	if err != nil {
		return nil, err
	}

	uc.emit(entity.Event{
		Type:   entity.EventContentRated,
		Height: call.Height,
		Attributes: map[string]string{
			"contentId": strconv.FormatUint(id, 10),
			"user":      call.Caller,
			"rating":    strconv.FormatUint(rating, 10),
			"avgRating": strconv.FormatUint(avg.AvgRating, 10),
		},
	})
	return avg, nil
}

func (uc *ratingUseCase) GetAverageRating(ctx context.Context, id uint64) (*entity.ContentAvgRating, error) {
	avg, err := uc.repo.GetAvgRating(id)
	if err != nil {
		uc.logger.Error("Failed to get average rating for content %d: %v", id, err)
		return nil, fmt.Errorf("failed to get average rating: %w", err)
	}
	if avg == nil {
		avg = &entity.ContentAvgRating{ContentID: id}
	}
	return avg, nil
}

func (uc *ratingUseCase) GetRating(ctx context.Context, id uint64, user string) (*entity.ContentRating, error) {
	rating, err := uc.repo.GetRating(id, user)
	if err != nil {
		uc.logger.Error("Failed to get rating for content %d by %s: %v", id, user, err)
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return rating, nil
}
