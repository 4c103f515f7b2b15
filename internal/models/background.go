package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Background is a Cloudinary-hosted image shown behind the booking pages.
type Background struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	URL      string `gorm:"size:500;not null" json:"url"`
	PublicID string `gorm:"size:255;not null" json:"public_id"`

	IsActive bool `gorm:"default:false;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *Background) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
