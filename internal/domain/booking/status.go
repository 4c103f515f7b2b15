package booking

import (
	"time"

	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked   Status = "booked"
	StatusCanceled Status = "canceled"
)

// The machine is monotonic: booked -> canceled, nothing else.

func CanCancel(current Status) error {
	if current != StatusBooked {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusBooked
}

// Cancel applies the transition and stamps the cancellation time. Callers
// decide what an already-canceled row means; here it is just not cancelable.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCanceled)
	ap.CanceledAt = &now
	return nil
}
