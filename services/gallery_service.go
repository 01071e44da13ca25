package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/osociohoteleiro/praiabela/models"
)

type GalleryService struct {
	DB *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{DB: db}
}

func (s *GalleryService) ListPublic() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := s.DB.
		Where("is_active = ?", true).
		Order("display_order ASC, created_at DESC").
		Find(&images).Error
	return images, err
}

func (s *GalleryService) ListAll() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := s.DB.Order("display_order ASC, created_at DESC").Find(&images).Error
	return images, err
}

func (s *GalleryService) GetByID(id uint) (models.GalleryImage, error) {
	var image models.GalleryImage
	if err := s.DB.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.GalleryImage{}, ErrNotFound
		}
		return models.GalleryImage{}, err
	}
	return image, nil
}

func (s *GalleryService) Create(image *models.GalleryImage) error {
	return s.DB.Create(image).Error
}

func (s *GalleryService) Update(id uint, image models.GalleryImage) (models.GalleryImage, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.GalleryImage{}, err
	}

	image.ID = existing.ID
	image.CreatedAt = existing.CreatedAt
	if err := s.DB.Model(&existing).Select("*").Omit("created_at").Updates(image).Error; err != nil {
		return models.GalleryImage{}, err
	}
	return s.GetByID(id)
}

func (s *GalleryService) Delete(id uint) error {
	res := s.DB.Delete(&models.GalleryImage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder works like ExperienceService.Reorder: transactional, dense
// order from 0, unlisted ids untouched.
func (s *GalleryService) Reorder(ids []uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&models.GalleryImage{}).
				Where("id = ?", id).
				Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
