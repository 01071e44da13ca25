package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/osociohoteleiro/praiabela/models"
)

type ExperienceService struct {
	DB *gorm.DB
}

func NewExperienceService(db *gorm.DB) *ExperienceService {
	return &ExperienceService{DB: db}
}

func (s *ExperienceService) ListPublic() ([]models.Experience, error) {
	var experiences []models.Experience
	err := s.DB.
		Where("is_active = ?", true).
		Order("display_order ASC, created_at DESC").
		Find(&experiences).Error
	return experiences, err
}

func (s *ExperienceService) ListAll() ([]models.Experience, error) {
	var experiences []models.Experience
	err := s.DB.Order("display_order ASC, created_at DESC").Find(&experiences).Error
	return experiences, err
}

func (s *ExperienceService) GetByID(id uint) (models.Experience, error) {
	var exp models.Experience
	if err := s.DB.First(&exp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Experience{}, ErrNotFound
		}
		return models.Experience{}, err
	}
	return exp, nil
}

func (s *ExperienceService) Create(exp *models.Experience) error {
	return s.DB.Create(exp).Error
}

func (s *ExperienceService) Update(id uint, exp models.Experience) (models.Experience, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.Experience{}, err
	}

	exp.ID = existing.ID
	exp.CreatedAt = existing.CreatedAt
	if err := s.DB.Model(&existing).Select("*").Omit("created_at").Updates(exp).Error; err != nil {
		return models.Experience{}, err
	}
	return s.GetByID(id)
}

func (s *ExperienceService) Delete(id uint) error {
	res := s.DB.Delete(&models.Experience{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder rewrites display_order as the position of each id in the given
// sequence, all inside one transaction. Ids not listed keep their old
// value and sort after the reordered block.
func (s *ExperienceService) Reorder(ids []uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&models.Experience{}).
				Where("id = ?", id).
				Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
