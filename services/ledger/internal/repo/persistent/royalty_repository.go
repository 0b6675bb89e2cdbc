package persistent

import (
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/model"

	"gorm.io/gorm/clause"
)

func (s *gormStore) GetRoyaltyBalance(creator string) (*entity.RoyaltyBalance, error) {
	var balanceModel model.RoyaltyBalanceModel
	if err := s.db.Where("creator = ?", creator).First(&balanceModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToRoyaltyBalanceEntity(&balanceModel), nil
}

func (s *gormStore) PutRoyaltyBalance(balance *entity.RoyaltyBalance) error {
	balanceModel := &model.RoyaltyBalanceModel{
		Creator: balance.Creator,
		Balance: balance.Balance,
	}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(balanceModel).Error
}

func (s *gormStore) ListRoyaltyBalances() ([]*entity.RoyaltyBalance, error) {
	var balanceModels []model.RoyaltyBalanceModel
	if err := s.db.Order("creator ASC").Find(&balanceModels).Error; err != nil {
		return nil, err
	}

	balances := make([]*entity.RoyaltyBalance, len(balanceModels))
	for i := range balanceModels {
		balances[i] = ToRoyaltyBalanceEntity(&balanceModels[i])
	}
	return balances, nil
}
