package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/osociohoteleiro/praiabela/models"
)

type SiteInfoService struct {
	DB *gorm.DB
}

func NewSiteInfoService(db *gorm.DB) *SiteInfoService {
	return &SiteInfoService{DB: db}
}

func (s *SiteInfoService) Get() (models.SiteInfo, error) {
	var info models.SiteInfo
	if err := s.DB.First(&info, models.SiteInfoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SiteInfo{}, ErrNotFound
		}
		return models.SiteInfo{}, err
	}
	return info, nil
}

// Update replaces the singleton row in full. There is no create or
// delete for site info; the row exists from the seed onward.
func (s *SiteInfoService) Update(info models.SiteInfo) (models.SiteInfo, error) {
	existing, err := s.Get()
	if err != nil {
		return models.SiteInfo{}, err
	}

	info.ID = existing.ID
	if err := s.DB.Model(&existing).Select("*").Updates(info).Error; err != nil {
		return models.SiteInfo{}, err
	}
	return s.Get()
}
