package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noursalon/salon-scheduler/internal/logger"
	"github.com/noursalon/salon-scheduler/internal/models"
)

// Dispatcher decouples confirmation delivery from the booking transaction:
// the booking commits, the appointment is queued, and a worker goroutine
// sends in the background. A full queue drops the message rather than block
// or fail the booking.
type Dispatcher struct {
	sender Sender
	loc    *time.Location
	queue  chan models.Appointment
	log    *zap.Logger
}

func NewDispatcher(sender Sender, loc *time.Location) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		loc:    loc,
		queue:  make(chan models.Appointment, 100),
		log:    logger.Get(),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ap := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		err := d.sender.Send(ctx, ap.Phone, ConfirmationMessage(&ap, d.loc))
		cancel()

		if err != nil {
			d.log.Error("booking confirmation failed",
				zap.String("appointment_id", ap.ID),
				zap.Error(err),
			)
		}
	}
}

// DispatchConfirmation never blocks and never fails the caller.
func (d *Dispatcher) DispatchConfirmation(ap *models.Appointment) {
	select {
	case d.queue <- *ap:
	default:
		d.log.Warn("notification queue full, dropping confirmation",
			zap.String("appointment_id", ap.ID),
		)
	}
}

func ConfirmationMessage(ap *models.Appointment, loc *time.Location) string {
	start := ap.StartDatetime.In(loc)
	name := ap.Treatment.NameEn
	if name == "" {
		name = "your treatment"
	}
	return fmt.Sprintf(
		"Hi %s! Your appointment for %s is confirmed for %s at %s. See you soon!",
		ap.CustomerName,
		name,
		start.Format("02/01/2006"),
		start.Format("15:04"),
	)
}

func ReminderMessage(ap *models.Appointment, loc *time.Location) string {
	start := ap.StartDatetime.In(loc)
	name := ap.Treatment.NameEn
	if name == "" {
		name = "your treatment"
	}
	return fmt.Sprintf(
		"Reminder: %s, your appointment for %s starts at %s today.",
		ap.CustomerName,
		name,
		start.Format("15:04"),
	)
}
