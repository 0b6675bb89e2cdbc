package entity

import "time"

// Subscription is keyed by subscriber: one record per subscriber.
type Subscription struct {
	Subscriber string    `json:"subscriber"`
	Creator    string    `json:"creator"`
	Expiry     uint64    `json:"expiry"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ActiveAt reports whether the subscription is still running at height.
func (s *Subscription) ActiveAt(height uint64) bool {
	return s != nil && height < s.Expiry
}
