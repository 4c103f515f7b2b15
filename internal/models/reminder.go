package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder records that a pre-appointment message went out, one per
// appointment, so the worker never sends twice.
type Reminder struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	AppointmentID string      `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Channel string    `gorm:"size:20;default:'whatsapp'" json:"channel"`
	SentAt  time.Time `json:"sent_at"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
