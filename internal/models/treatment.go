package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Treatment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	NameAr string `gorm:"size:100;not null" json:"name_ar"`
	NameHe string `gorm:"size:100;not null" json:"name_he"`
	NameEn string `gorm:"size:100;not null" json:"name_en"`

	DurationMinutes int     `gorm:"not null" json:"duration_minutes"`
	Price           float64 `gorm:"not null" json:"price"`

	// Treatments are deactivated, never deleted, so historical
	// appointments keep a valid reference.
	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Treatment) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
