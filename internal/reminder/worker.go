package reminder

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/noursalon/salon-scheduler/internal/logger"
	"github.com/noursalon/salon-scheduler/internal/models"
	"github.com/noursalon/salon-scheduler/internal/notify"
)

const (
	// Appointments starting inside [now+55m, now+65m] get a reminder. The
	// window is wider than the tick so a slow tick can't skip anyone; the
	// reminders table deduplicates.
	windowFrom = 55 * time.Minute
	windowTo   = 65 * time.Minute

	settingRemindersEnabled = "reminders_enabled"
)

// Worker periodically scans for bookings that are about an hour away and
// sends each one a single WhatsApp reminder.
type Worker struct {
	db       *gorm.DB
	sender   notify.Sender
	loc      *time.Location
	interval time.Duration
	log      *zap.Logger
}

func NewWorker(db *gorm.DB, sender notify.Sender, loc *time.Location, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Worker{
		db:       db,
		sender:   sender,
		loc:      loc,
		interval: interval,
		log:      logger.Get(),
	}
}

// Run loops until ctx is canceled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("reminder worker stopping")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	if !w.enabled(ctx) {
		return
	}

	now := time.Now()
	from := now.Add(windowFrom)
	to := now.Add(windowTo)

	var due []models.Appointment
	err := w.db.WithContext(ctx).
		Preload("Treatment").
		Joins("LEFT JOIN reminders ON reminders.appointment_id = appointments.id").
		Where(
			"appointments.status = ? AND appointments.start_datetime >= ? AND appointments.start_datetime <= ? AND reminders.id IS NULL",
			"booked", from, to,
		).
		Find(&due).Error
	if err != nil {
		w.log.Error("reminder scan failed", zap.Error(err))
		return
	}

	for _, ap := range due {
		if err := w.sender.Send(ctx, ap.Phone, notify.ReminderMessage(&ap, w.loc)); err != nil {
			w.log.Error("reminder send failed",
				zap.String("appointment_id", ap.ID),
				zap.Error(err),
			)
			continue
		}

		rec := models.Reminder{
			AppointmentID: ap.ID,
			Channel:       "whatsapp",
			SentAt:        time.Now(),
		}
		if err := w.db.WithContext(ctx).Create(&rec).Error; err != nil {
			w.log.Error("reminder record failed",
				zap.String("appointment_id", ap.ID),
				zap.Error(err),
			)
		}
	}
}

// enabled reads the reminders_enabled setting; a missing row means enabled.
func (w *Worker) enabled(ctx context.Context) bool {
	var s models.Setting
	err := w.db.WithContext(ctx).First(&s, "key = ?", settingRemindersEnabled).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			w.log.Warn("settings read failed", zap.Error(err))
		}
		return true
	}
	return s.Value != "false"
}
