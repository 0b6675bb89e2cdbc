package http

import (
	"context"

	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockContentUseCase struct {
	mock.Mock
}

func (m *MockContentUseCase) CreateContent(ctx context.Context, call usecase.Call, id, price, royaltyPercentage uint64) (*entity.ContentItem, error) {
	args := m.Called(call, id, price, royaltyPercentage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentItem), args.Error(1)
}

func (m *MockContentUseCase) CreatePremiumContent(ctx context.Context, call usecase.Call, id, price, royaltyPercentage uint64) (*entity.ContentItem, error) {
	args := m.Called(call, id, price, royaltyPercentage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentItem), args.Error(1)
}

func (m *MockContentUseCase) TransferContentOwnership(ctx context.Context, call usecase.Call, id uint64, newOwner string) (*entity.ContentItem, error) {
	args := m.Called(call, id, newOwner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentItem), args.Error(1)
}

func (m *MockContentUseCase) GetContentDetails(ctx context.Context, id uint64) (*entity.ContentItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentItem), args.Error(1)
}

type MockAccessUseCase struct {
	mock.Mock
}

func (m *MockAccessUseCase) PurchaseContentAccess(ctx context.Context, call usecase.Call, id uint64) (*usecase.Purchase, error) {
	args := m.Called(call, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Purchase), args.Error(1)
}

func (m *MockAccessUseCase) HasPremiumAccess(ctx context.Context, id uint64, user string) (bool, error) {
	args := m.Called(id, user)
	return args.Bool(0), args.Error(1)
}

type MockRoyaltyUseCase struct {
	mock.Mock
}

func (m *MockRoyaltyUseCase) GetRoyaltyBalance(ctx context.Context, creator string) (uint64, error) {
	args := m.Called(creator)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockRoyaltyUseCase) WithdrawRoyalties(ctx context.Context, call usecase.Call) (uint64, error) {
	args := m.Called(call)
	return args.Get(0).(uint64), args.Error(1)
}

type MockSubscriptionUseCase struct {
	mock.Mock
}

func (m *MockSubscriptionUseCase) GrantSubscription(ctx context.Context, call usecase.Call, subscriber, creator string, duration uint64) (*entity.Subscription, error) {
	args := m.Called(call, subscriber, creator, duration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionUseCase) ExtendSubscription(ctx context.Context, call usecase.Call, subscriber, creator string, duration uint64) (*entity.Subscription, error) {
	args := m.Called(call, subscriber, creator, duration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionUseCase) GetSubscription(ctx context.Context, subscriber string) (*entity.Subscription, error) {
	args := m.Called(subscriber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionUseCase) IsSubscriptionActive(ctx context.Context, subscriber string, height uint64) (bool, error) {
	args := m.Called(subscriber, height)
	return args.Bool(0), args.Error(1)
}

type MockRatingUseCase struct {
	mock.Mock
}

func (m *MockRatingUseCase) RateContent(ctx context.Context, call usecase.Call, id, rating uint64) (*entity.ContentAvgRating, error) {
	args := m.Called(call, id, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentAvgRating), args.Error(1)
}

func (m *MockRatingUseCase) GetAverageRating(ctx context.Context, id uint64) (*entity.ContentAvgRating, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentAvgRating), args.Error(1)
}

func (m *MockRatingUseCase) GetRating(ctx context.Context, id uint64, user string) (*entity.ContentRating, error) {
	args := m.Called(id, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentRating), args.Error(1)
}

type MockReportUseCase struct {
	mock.Mock
}

func (m *MockReportUseCase) ReportContent(ctx context.Context, call usecase.Call, id uint64, reason string) (*entity.ContentReport, error) {
	args := m.Called(call, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentReport), args.Error(1)
}

func (m *MockReportUseCase) GetReport(ctx context.Context, id uint64, reporter string) (*entity.ContentReport, error) {
	args := m.Called(id, reporter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentReport), args.Error(1)
}

type MockWalletUseCase struct {
	mock.Mock
}

func (m *MockWalletUseCase) GetWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletUseCase) TopUp(ctx context.Context, call usecase.Call, userID string, amount uint64) (*entity.Wallet, error) {
	args := m.Called(call, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletUseCase) GetTransactions(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

type MockAuditUseCase struct {
	mock.Mock
}

func (m *MockAuditUseCase) ExportSnapshot(ctx context.Context, call usecase.Call) (*usecase.SnapshotResult, error) {
	args := m.Called(call)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SnapshotResult), args.Error(1)
}

func (m *MockAuditUseCase) Snapshot(ctx context.Context, height uint64) (*entity.Snapshot, error) {
	args := m.Called(height)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Snapshot), args.Error(1)
}

var (
	_ usecase.ContentUseCase      = (*MockContentUseCase)(nil)
	_ usecase.AccessUseCase       = (*MockAccessUseCase)(nil)
	_ usecase.RoyaltyUseCase      = (*MockRoyaltyUseCase)(nil)
	_ usecase.SubscriptionUseCase = (*MockSubscriptionUseCase)(nil)
	_ usecase.RatingUseCase       = (*MockRatingUseCase)(nil)
	_ usecase.ReportUseCase       = (*MockReportUseCase)(nil)
	_ usecase.WalletUseCase       = (*MockWalletUseCase)(nil)
	_ usecase.AuditUseCase        = (*MockAuditUseCase)(nil)
)
