package model

import "gorm.io/gorm"

// All returns every ledger table model in creation order.
func All() []interface{} {
	return []interface{}{
		&ContentModel{},
		&AccessGrantModel{},
		&RoyaltyBalanceModel{},
		&SubscriptionModel{},
		&RatingModel{},
		&AvgRatingModel{},
		&ReportModel{},
		&WalletModel{},
		&TransactionModel{},
	}
}

// AutoMigrate creates or updates the ledger tables. Production deployments
// apply migrations/ with cmd/migrate instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
