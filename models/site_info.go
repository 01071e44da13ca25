package models

import "time"

// SiteInfo is a singleton row (id pinned to 1). It is created once by the
// seed and only ever updated after that.
type SiteInfo struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AboutText      string    `gorm:"type:text" json:"about_text"`
	ContactEmail   string    `gorm:"size:150" json:"contact_email"`
	ContactPhone   string    `gorm:"size:50" json:"contact_phone"`
	ContactAddress string    `gorm:"size:255" json:"contact_address"`
	CheckInTime    string    `gorm:"size:10;default:'14:00'" json:"check_in_time"`
	CheckOutTime   string    `gorm:"size:10;default:'12:00'" json:"check_out_time"`
	FacebookURL    *string   `gorm:"size:255" json:"facebook_url"`
	InstagramURL   *string   `gorm:"size:255" json:"instagram_url"`
	WhatsappNumber *string   `gorm:"size:50" json:"whatsapp_number"`
	HeroVideoURL   *string   `gorm:"size:255" json:"hero_video_url"`
	LogoURL        *string   `gorm:"size:255" json:"logo_url"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (SiteInfo) TableName() string {
	return "site_info"
}

// SiteInfoID is the fixed primary key of the singleton row.
const SiteInfoID uint = 1
