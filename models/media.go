package models

import "time"

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media is the append-only log of every blob-store upload. A row is
// removed only when the object itself is deleted.
type Media struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Type       string    `gorm:"size:10;not null" json:"type"` // image or video
	Category   string    `gorm:"size:50" json:"category"`
	URL        string    `gorm:"size:255;not null" json:"url"`
	StorageKey string    `gorm:"column:s3_key;size:255;not null" json:"s3_key"`
	Filename   string    `gorm:"size:255;not null" json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `gorm:"column:uploaded_at;autoCreateTime" json:"uploaded_at"`
}

func (Media) TableName() string {
	return "media"
}
