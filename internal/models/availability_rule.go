package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRule opens a bookable window on exactly one calendar date.
// Times are business-local wall-clock strings; the date is the business-local
// calendar day. Rules are immutable once created.
type AvailabilityRule struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SpecificDate string `gorm:"size:10;index;not null" json:"specific_date"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	SlotIntervalMinutes int `gorm:"not null" json:"slot_interval_minutes"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *AvailabilityRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
