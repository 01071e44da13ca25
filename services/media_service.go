package services

import (
	"gorm.io/gorm"

	"github.com/osociohoteleiro/praiabela/models"
)

type MediaService struct {
	DB *gorm.DB
}

func NewMediaService(db *gorm.DB) *MediaService {
	return &MediaService{DB: db}
}

// List returns upload records, newest first, optionally filtered by
// type and/or category.
func (s *MediaService) List(mediaType, category string) ([]models.Media, error) {
	query := s.DB.Order("uploaded_at DESC")
	if mediaType != "" {
		query = query.Where("type = ?", mediaType)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var media []models.Media
	err := query.Find(&media).Error
	return media, err
}

func (s *MediaService) Create(media *models.Media) error {
	return s.DB.Create(media).Error
}

// DeleteByKey removes the row for a storage key. Missing rows are not an
// error: the object may have been uploaded before the media log existed.
func (s *MediaService) DeleteByKey(key string) error {
	return s.DB.Where("s3_key = ?", key).Delete(&models.Media{}).Error
}
