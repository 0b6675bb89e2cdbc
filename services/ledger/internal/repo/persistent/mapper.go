package persistent

import (
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/model"
)

func ToContentEntity(m *model.ContentModel) *entity.ContentItem {
	if m == nil {
		return nil
	}

	return &entity.ContentItem{
		ID:                m.ID,
		Creator:           m.Creator,
		Price:             m.Price,
		RoyaltyPercentage: m.RoyaltyPercentage,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToContentModel(e *entity.ContentItem) *model.ContentModel {
	if e == nil {
		return nil
	}

	return &model.ContentModel{
		ID:                e.ID,
		Creator:           e.Creator,
		Price:             e.Price,
		RoyaltyPercentage: e.RoyaltyPercentage,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func ToGrantEntity(m *model.AccessGrantModel) *entity.PremiumAccessGrant {
	if m == nil {
		return nil
	}

	return &entity.PremiumAccessGrant{
		ContentID: m.ContentID,
		UserID:    m.UserID,
		Access:    m.Access,
		CreatedAt: m.CreatedAt,
	}
}

func ToRoyaltyBalanceEntity(m *model.RoyaltyBalanceModel) *entity.RoyaltyBalance {
	if m == nil {
		return nil
	}

	return &entity.RoyaltyBalance{
		Creator:   m.Creator,
		Balance:   m.Balance,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}

	return &entity.Subscription{
		Subscriber: m.Subscriber,
		Creator:    m.Creator,
		Expiry:     m.Expiry,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToSubscriptionModel(e *entity.Subscription) *model.SubscriptionModel {
	if e == nil {
		return nil
	}

	return &model.SubscriptionModel{
		Subscriber: e.Subscriber,
		Creator:    e.Creator,
		Expiry:     e.Expiry,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToRatingEntity(m *model.RatingModel) *entity.ContentRating {
	if m == nil {
		return nil
	}

	return &entity.ContentRating{
		ContentID: m.ContentID,
		UserID:    m.UserID,
		Rating:    m.Rating,
		Timestamp: m.Timestamp,
	}
}

func ToAvgRatingEntity(m *model.AvgRatingModel) *entity.ContentAvgRating {
	if m == nil {
		return nil
	}

	return &entity.ContentAvgRating{
		ContentID:   m.ContentID,
		TotalRating: m.TotalRating,
		Count:       m.Count,
		AvgRating:   m.AvgRating,
	}
}

func ToReportEntity(m *model.ReportModel) *entity.ContentReport {
	if m == nil {
		return nil
	}

	return &entity.ContentReport{
		ContentID: m.ContentID,
		Reporter:  m.Reporter,
		Reason:    m.Reason,
		Timestamp: m.Timestamp,
		Resolved:  m.Resolved,
	}
}

func ToWalletEntity(m *model.WalletModel) *entity.Wallet {
	if m == nil {
		return nil
	}

	return &entity.Wallet{
		ID:        m.ID,
		UserID:    m.UserID,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToWalletModel(e *entity.Wallet) *model.WalletModel {
	if e == nil {
		return nil
	}

	return &model.WalletModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Balance:   e.Balance,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		ContentID:     m.ContentID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		Height:        m.Height,
		CreatedAt:     m.CreatedAt,
	}
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:            e.ID,
		UserID:        e.UserID,
		ContentID:     e.ContentID,
		Type:          string(e.Type),
		Amount:        e.Amount,
		BalanceBefore: e.BalanceBefore,
		BalanceAfter:  e.BalanceAfter,
		Height:        e.Height,
		CreatedAt:     e.CreatedAt,
	}
}
