package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	Notes        string `gorm:"size:500" json:"notes"`

	TreatmentID string    `gorm:"type:uuid;not null" json:"treatment_id"`
	Treatment   Treatment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"treatment"`

	StartDatetime time.Time `gorm:"index;not null" json:"start_datetime"`
	EndDatetime   time.Time `gorm:"not null" json:"end_datetime"`

	// Snapshot taken at booking time; later price edits never touch it.
	PriceAtBooking float64 `gorm:"not null" json:"price_at_booking"`

	Status    string `gorm:"size:20;default:'booked';index" json:"status"`
	CreatedBy string `gorm:"size:20;default:'customer'" json:"created_by"`

	CanceledAt *time.Time `json:"canceled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
