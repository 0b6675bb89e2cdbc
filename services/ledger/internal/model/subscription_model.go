package model

import "time"

type SubscriptionModel struct {
	Subscriber string    `gorm:"primaryKey;type:varchar(64)" json:"subscriber"`
	Creator    string    `gorm:"type:varchar(64);not null;index" json:"creator"`
	Expiry     uint64    `gorm:"not null" json:"expiry"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
