package persistent

import (
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/model"

	"gorm.io/gorm/clause"
)

func (s *gormStore) GetContent(id uint64) (*entity.ContentItem, error) {
	if !storableID(id) {
		return nil, nil
	}
	var contentModel model.ContentModel
	if err := s.db.Where("id = ?", id).First(&contentModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToContentEntity(&contentModel), nil
}

func (s *gormStore) CreateContent(content *entity.ContentItem) error {
	contentModel := ToContentModel(content)
	if err := s.db.Create(contentModel).Error; err != nil {
		return err
	}
	*content = *ToContentEntity(contentModel)
	return nil
}

func (s *gormStore) UpdateContentCreator(id uint64, creator string) error {
	return s.db.Model(&model.ContentModel{}).Where("id = ?", id).Update("creator", creator).Error
}

func (s *gormStore) ListContents() ([]*entity.ContentItem, error) {
	var contentModels []model.ContentModel
	if err := s.db.Order("id ASC").Find(&contentModels).Error; err != nil {
		return nil, err
	}

	contents := make([]*entity.ContentItem, len(contentModels))
	for i := range contentModels {
		contents[i] = ToContentEntity(&contentModels[i])
	}
	return contents, nil
}

func (s *gormStore) HasGrant(contentID uint64, userID string) (bool, error) {
	if !storableID(contentID) {
		return false, nil
	}
	var count int64
	if err := s.db.Model(&model.AccessGrantModel{}).
		Where("content_id = ? AND user_id = ?", contentID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// PutGrant inserts the grant or leaves an existing one untouched.
func (s *gormStore) PutGrant(grant *entity.PremiumAccessGrant) error {
	grantModel := &model.AccessGrantModel{
		ContentID: grant.ContentID,
		UserID:    grant.UserID,
		Access:    true,
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(grantModel).Error
}

func (s *gormStore) ListGrants() ([]*entity.PremiumAccessGrant, error) {
	var grantModels []model.AccessGrantModel
	if err := s.db.Order("content_id ASC, user_id ASC").Find(&grantModels).Error; err != nil {
		return nil, err
	}

	grants := make([]*entity.PremiumAccessGrant, len(grantModels))
	for i := range grantModels {
		grants[i] = ToGrantEntity(&grantModels[i])
	}
	return grants, nil
}
