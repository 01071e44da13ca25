package models

import "time"

type GalleryImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	URL          string    `gorm:"size:255;not null" json:"url"`
	Caption      string    `gorm:"size:255" json:"caption"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (GalleryImage) TableName() string {
	return "gallery"
}
