package persistent

import (
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/model"

	"github.com/google/uuid"
)

func (s *gormStore) GetOrCreateWallet(userID string) (*entity.Wallet, error) {
	var walletModel model.WalletModel
	if err := s.db.Where("user_id = ?", userID).First(&walletModel).Error; err != nil {
		if isNotFound(err) {
			walletModel = model.WalletModel{
				ID:      uuid.New().String(),
				UserID:  userID,
				Balance: 0,
			}
			if err := s.db.Create(&walletModel).Error; err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	return ToWalletEntity(&walletModel), nil
}

func (s *gormStore) UpdateWallet(wallet *entity.Wallet) error {
	return s.db.Model(&model.WalletModel{}).
		Where("id = ?", wallet.ID).
		Update("balance", wallet.Balance).Error
}

func (s *gormStore) CreateTransaction(transaction *entity.Transaction) error {
	transactionModel := ToTransactionModel(transaction)
	if transactionModel.ID == "" {
		transactionModel.ID = uuid.New().String()
	}
	if err := s.db.Create(transactionModel).Error; err != nil {
		return err
	}
	*transaction = *ToTransactionEntity(transactionModel)
	return nil
}

func (s *gormStore) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	query := s.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = ToTransactionEntity(&transactionModels[i])
	}
	return transactions, nil
}
