package models

import (
	"time"

	"gorm.io/datatypes"
)

// Package is a bundled stay offer. Featured packages sort first in the
// public listing.
type Package struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Inclusions  datatypes.JSON `json:"inclusions"`
	ImageURLs   datatypes.JSON `gorm:"column:image_urls" json:"image_urls"`
	IsFeatured  bool           `gorm:"default:false" json:"is_featured"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
