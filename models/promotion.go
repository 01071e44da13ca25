package models

import "time"

type Promotion struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Discount    int       `gorm:"not null" json:"discount"` // percent, 1..100
	ValidUntil  *string   `gorm:"size:20" json:"valid_until"`
	ImageURL    *string   `gorm:"size:255" json:"image_url"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
