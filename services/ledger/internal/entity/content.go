package entity

import "time"

const (
	// MaxPremiumRoyaltyPercentage caps royalties on the premium creation path.
	MaxPremiumRoyaltyPercentage = 50
	MinRating                   = 1
	MaxRating                   = 5
	MaxReportReasonLength       = 256
)

type ContentItem struct {
	ID                uint64    `json:"id"`
	Creator           string    `json:"creator"`
	Price             uint64    `json:"price"`
	RoyaltyPercentage uint64    `json:"royalty_percentage"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type PremiumAccessGrant struct {
	ContentID uint64    `json:"content_id"`
	UserID    string    `json:"user_id"`
	Access    bool      `json:"access"`
	CreatedAt time.Time `json:"created_at"`
}

type RoyaltyBalance struct {
	Creator   string    `json:"creator"`
	Balance   uint64    `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}
