package entity

type ContentRating struct {
	ContentID uint64 `json:"content_id"`
	UserID    string `json:"user_id"`
	Rating    uint64 `json:"rating"`
	Timestamp uint64 `json:"timestamp"`
}

type ContentAvgRating struct {
	ContentID   uint64 `json:"content_id"`
	TotalRating uint64 `json:"total_rating"`
	Count       uint64 `json:"count"`
	AvgRating   uint64 `json:"avg_rating"`
}

type ContentReport struct {
	ContentID uint64 `json:"content_id"`
	Reporter  string `json:"reporter"`
	Reason    string `json:"reason"`
	Timestamp uint64 `json:"timestamp"`
	Resolved  bool   `json:"resolved"`
}
