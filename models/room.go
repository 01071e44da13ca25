package models

import (
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Capacity    int            `gorm:"not null;default:2" json:"capacity"`
	Size        string         `gorm:"size:50" json:"size"`
	Price       float64        `gorm:"not null;default:0" json:"price"`
	Amenities   datatypes.JSON `json:"amenities"`
	ImageURLs   datatypes.JSON `gorm:"column:image_urls" json:"image_urls"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
