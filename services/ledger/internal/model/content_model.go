package model

import "time"

type ContentModel struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Creator           string    `gorm:"type:varchar(64);not null;index" json:"creator"`
	Price             uint64    `gorm:"not null" json:"price"`
	RoyaltyPercentage uint64    `gorm:"not null" json:"royalty_percentage"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (ContentModel) TableName() string {
	return "contents"
}

type AccessGrantModel struct {
	ContentID uint64    `gorm:"primaryKey;autoIncrement:false" json:"content_id"`
	UserID    string    `gorm:"primaryKey;type:varchar(64)" json:"user_id"`
	Access    bool      `gorm:"not null" json:"access"`
	CreatedAt time.Time `json:"created_at"`
}

func (AccessGrantModel) TableName() string {
	return "premium_access_grants"
}

type RoyaltyBalanceModel struct {
	Creator   string    `gorm:"primaryKey;type:varchar(64)" json:"creator"`
	Balance   uint64    `gorm:"not null" json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RoyaltyBalanceModel) TableName() string {
	return "royalty_balances"
}
