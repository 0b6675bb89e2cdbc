package persistent

import (
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/model"
)

func (s *gormStore) GetSubscription(subscriber string) (*entity.Subscription, error) {
	var subscriptionModel model.SubscriptionModel
	if err := s.db.Where("subscriber = ?", subscriber).First(&subscriptionModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToSubscriptionEntity(&subscriptionModel), nil
}

func (s *gormStore) CreateSubscription(subscription *entity.Subscription) error {
	subscriptionModel := ToSubscriptionModel(subscription)
	if err := s.db.Create(subscriptionModel).Error; err != nil {
		return err
	}
	*subscription = *ToSubscriptionEntity(subscriptionModel)
	return nil
}

func (s *gormStore) UpdateSubscription(subscription *entity.Subscription) error {
	return s.db.Model(&model.SubscriptionModel{}).
		Where("subscriber = ?", subscription.Subscriber).
		Updates(map[string]interface{}{
			"creator": subscription.Creator,
			"expiry":  subscription.Expiry,
		}).Error
}

func (s *gormStore) ListSubscriptions() ([]*entity.Subscription, error) {
	var subscriptionModels []model.SubscriptionModel
	if err := s.db.Order("subscriber ASC").Find(&subscriptionModels).Error; err != nil {
		return nil, err
	}

	subscriptions := make([]*entity.Subscription, len(subscriptionModels))
	for i := range subscriptionModels {
		subscriptions[i] = ToSubscriptionEntity(&subscriptionModels[i])
	}
	return subscriptions, nil
}
