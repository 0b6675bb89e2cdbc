package usecase

import (
	"context"
	"fmt"
	"strconv"

	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/repo/persistent"
)

type SubscriptionUseCase interface {
	GrantSubscription(ctx context.Context, call Call, subscriber, creator string, duration uint64) (*entity.Subscription, error)
	ExtendSubscription(ctx context.Context, call Call, subscriber, creator string, duration uint64) (*entity.Subscription, error)
	GetSubscription(ctx context.Context, subscriber string) (*entity.Subscription, error)
	IsSubscriptionActive(ctx context.Context, subscriber string, height uint64) (bool, error)
}

type subscriptionUseCase struct {
	ledgerCore
}

func NewSubscriptionUseCase(deps Deps) SubscriptionUseCase {
	return &subscriptionUseCase{ledgerCore: newLedgerCore(deps)}
}

func (uc *subscriptionUseCase) GrantSubscription(ctx context.Context, call Call, subscriber, creator string, duration uint64) (*entity.Subscription, error) {
	var subscription *entity.Subscription
	err := uc.run(ctx, "grantSubscription", func(store persistent.Store) error {
		if !uc.isOwner(call.Caller) {
			return entity.ErrNotAuthorized
		}
		if duration == 0 {
			return entity.ErrInvalidAmount
		}

		existing, err := store.GetSubscription(subscriber)
		if err != nil {
			return err
		}
		if existing != nil {
			return entity.ErrSubscriptionExists
		}

		expiry, err := checkedAdd(call.Height, duration)
		if err != nil {
			return err
		}
		subscription = &entity.Subscription{
			Subscriber: subscriber,
			Creator:    creator,
			Expiry:     expiry,
		}
		return store.CreateSubscription(subscription)
	})
	if err != nil {
		return nil, err
	}

	uc.emit(subscriptionEvent(entity.EventSubscriptionGranted, call.Height, subscription))
	return subscription, nil
}

func (uc *subscriptionUseCase) ExtendSubscription(ctx context.Context, call Call, subscriber, creator string, duration uint64) (*entity.Subscription, error) {
	var subscription *entity.Subscription
	err := uc.run(ctx, "extendSubscription", func(store persistent.Store) error {
		if !uc.isOwner(call.Caller) && call.Caller != subscriber {
			return entity.ErrNotAuthorized
		}

		var err error
		subscription, err = store.GetSubscription(subscriber)
		if err != nil {
			return err
		}
		if subscription == nil {
			return entity.ErrSubscriptionNotFound
		}

		expiry, err := checkedAdd(subscription.Expiry, duration)
		if err != nil {
			return err
		}
		// The supplied creator replaces the recorded one.
		subscription.Creator = creator
		subscription.Expiry = expiry
		return store.UpdateSubscription(subscription)
	})
	if err != nil {
		return nil, err
	}

	uc.emit(subscriptionEvent(entity.EventSubscriptionExtended, call.Height, subscription))
	return subscription, nil
}

func (uc *subscriptionUseCase) GetSubscription(ctx context.Context, subscriber string) (*entity.Subscription, error) {
	subscription, err := uc.repo.GetSubscription(subscriber)
	if err != nil {
		uc.logger.Error("Failed to get subscription for %s: %v", subscriber, err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return subscription, nil
}

func (uc *subscriptionUseCase) IsSubscriptionActive(ctx context.Context, subscriber string, height uint64) (bool, error) {
	subscription, err := uc.GetSubscription(ctx, subscriber)
	if err != nil {
		return false, err
	}
	return subscription.ActiveAt(height), nil
}

func subscriptionEvent(eventType string, height uint64, subscription *entity.Subscription) entity.Event {
	return entity.Event{
		Type:   eventType,
		Height: height,
		Attributes: map[string]string{
			"subscriber": subscription.Subscriber,
			"creator":    subscription.Creator,
			"expiry":     strconv.FormatUint(subscription.Expiry, 10),
		},
	}
}
