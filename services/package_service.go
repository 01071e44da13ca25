package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/osociohoteleiro/praiabela/models"
)

type PackageService struct {
	DB *gorm.DB
}

func NewPackageService(db *gorm.DB) *PackageService {
	return &PackageService{DB: db}
}

// ListPublic returns active packages, featured first, then newest.
func (s *PackageService) ListPublic() ([]models.Package, error) {
	var packages []models.Package
	err := s.DB.
		Where("is_active = ?", true).
		Order("is_featured DESC, created_at DESC").
		Find(&packages).Error
	return packages, err
}

func (s *PackageService) ListAll() ([]models.Package, error) {
	var packages []models.Package
	err := s.DB.Order("is_featured DESC, created_at DESC").Find(&packages).Error
	return packages, err
}

func (s *PackageService) GetByID(id uint) (models.Package, error) {
	var pkg models.Package
	if err := s.DB.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Package{}, ErrNotFound
		}
		return models.Package{}, err
	}
	return pkg, nil
}

func (s *PackageService) Create(pkg *models.Package) error {
	return s.DB.Create(pkg).Error
}

func (s *PackageService) Update(id uint, pkg models.Package) (models.Package, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.Package{}, err
	}

	pkg.ID = existing.ID
	pkg.CreatedAt = existing.CreatedAt
	if err := s.DB.Model(&existing).Select("*").Omit("created_at").Updates(pkg).Error; err != nil {
		return models.Package{}, err
	}
	return s.GetByID(id)
}

func (s *PackageService) Delete(id uint) error {
	res := s.DB.Delete(&models.Package{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
