package models

import "time"

// Experience is an orderable highlight shown on the landing page. The
// admin panel moves items around and persists the result through the
// batch reorder endpoint.
type Experience struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	ImageURL     string    `gorm:"size:255;not null" json:"image_url"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
