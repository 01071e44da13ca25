package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/osociohoteleiro/praiabela/models"
)

type PromotionService struct {
	DB *gorm.DB
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{DB: db}
}

func (s *PromotionService) ListPublic() ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := s.DB.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&promotions).Error
	return promotions, err
}

func (s *PromotionService) ListAll() ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := s.DB.Order("created_at DESC").Find(&promotions).Error
	return promotions, err
}

func (s *PromotionService) GetByID(id uint) (models.Promotion, error) {
	var promo models.Promotion
	if err := s.DB.First(&promo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Promotion{}, ErrNotFound
		}
		return models.Promotion{}, err
	}
	return promo, nil
}

func (s *PromotionService) Create(promo *models.Promotion) error {
	return s.DB.Create(promo).Error
}

func (s *PromotionService) Update(id uint, promo models.Promotion) (models.Promotion, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.Promotion{}, err
	}

	promo.ID = existing.ID
	promo.CreatedAt = existing.CreatedAt
	if err := s.DB.Model(&existing).Select("*").Omit("created_at").Updates(promo).Error; err != nil {
		return models.Promotion{}, err
	}
	return s.GetByID(id)
}

func (s *PromotionService) Delete(id uint) error {
	res := s.DB.Delete(&models.Promotion{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
