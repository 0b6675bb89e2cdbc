package model

type RatingModel struct {
	ContentID uint64 `gorm:"primaryKey;autoIncrement:false" json:"content_id"`
	UserID    string `gorm:"primaryKey;type:varchar(64)" json:"user_id"`
	Rating    uint64 `gorm:"not null" json:"rating"`
	Timestamp uint64 `gorm:"not null" json:"timestamp"`
}

func (RatingModel) TableName() string {
	return "content_ratings"
}

type AvgRatingModel struct {
	ContentID   uint64 `gorm:"primaryKey;autoIncrement:false" json:"content_id"`
	TotalRating uint64 `gorm:"not null" json:"total_rating"`
	Count       uint64 `gorm:"not null" json:"count"`
	AvgRating   uint64 `gorm:"not null" json:"avg_rating"`
}

func (AvgRatingModel) TableName() string {
	return "content_avg_ratings"
}

type ReportModel struct {
	ContentID uint64 `gorm:"primaryKey;autoIncrement:false" json:"content_id"`
	Reporter  string `gorm:"primaryKey;type:varchar(64)" json:"reporter"`
	Reason    string `gorm:"type:varchar(256);not null" json:"reason"`
	Timestamp uint64 `gorm:"not null" json:"timestamp"`
	Resolved  bool   `gorm:"not null" json:"resolved"`
}

func (ReportModel) TableName() string {
	return "content_reports"
}
