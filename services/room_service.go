package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/osociohoteleiro/praiabela/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// ListPublic returns active rooms, newest first.
func (s *RoomService) ListPublic() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&rooms).Error
	return rooms, err
}

// ListAll returns every room regardless of is_active (admin view).
func (s *RoomService) ListAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("created_at DESC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrNotFound
		}
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Create(room *models.Room) error {
	return s.DB.Create(room).Error
}

// Update is full-record replace: every column is rewritten from the
// incoming value, so omitted optional fields fall back to their zero
// value rather than keeping old data.
func (s *RoomService) Update(id uint, room models.Room) (models.Room, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.Room{}, err
	}

	room.ID = existing.ID
	room.CreatedAt = existing.CreatedAt
	if err := s.DB.Model(&existing).Select("*").Omit("created_at").Updates(room).Error; err != nil {
		return models.Room{}, err
	}
	return s.GetByID(id)
}

// Delete hard-deletes the row. Deleting an absent id is an error, not a
// silent no-op.
func (s *RoomService) Delete(id uint) error {
	res := s.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
