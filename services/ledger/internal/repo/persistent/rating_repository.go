package persistent

import (
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/model"

	"gorm.io/gorm/clause"
)

func (s *gormStore) GetRating(contentID uint64, userID string) (*entity.ContentRating, error) {
	if !storableID(contentID) {
		return nil, nil
	}
	var ratingModel model.RatingModel
	if err := s.db.Where("content_id = ? AND user_id = ?", contentID, userID).First(&ratingModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToRatingEntity(&ratingModel), nil
}

// PutRating writes the user's rating, overwriting a previous one.
func (s *gormStore) PutRating(rating *entity.ContentRating) error {
	ratingModel := &model.RatingModel{
		ContentID: rating.ContentID,
		UserID:    rating.UserID,
		Rating:    rating.Rating,
		Timestamp: rating.Timestamp,
	}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(ratingModel).Error
}

func (s *gormStore) GetAvgRating(contentID uint64) (*entity.ContentAvgRating, error) {
	if !storableID(contentID) {
		return nil, nil
	}
	var avgModel model.AvgRatingModel
	if err := s.db.Where("content_id = ?", contentID).First(&avgModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToAvgRatingEntity(&avgModel), nil
}

func (s *gormStore) PutAvgRating(avg *entity.ContentAvgRating) error {
	avgModel := &model.AvgRatingModel{
		ContentID:   avg.ContentID,
		TotalRating: avg.TotalRating,
		Count:       avg.Count,
		AvgRating:   avg.AvgRating,
	}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(avgModel).Error
}

func (s *gormStore) ListRatings() ([]*entity.ContentRating, error) {
	var ratingModels []model.RatingModel
	if err := s.db.Order("content_id ASC, user_id ASC").Find(&ratingModels).Error; err != nil {
		return nil, err
	}

	ratings := make([]*entity.ContentRating, len(ratingModels))
	for i := range ratingModels {
		ratings[i] = ToRatingEntity(&ratingModels[i])
	}
	return ratings, nil
}

func (s *gormStore) ListAvgRatings() ([]*entity.ContentAvgRating, error) {
	var avgModels []model.AvgRatingModel
	if err := s.db.Order("content_id ASC").Find(&avgModels).Error; err != nil {
		return nil, err
	}

	avgs := make([]*entity.ContentAvgRating, len(avgModels))
	for i := range avgModels {
		avgs[i] = ToAvgRatingEntity(&avgModels[i])
	}
	return avgs, nil
}
