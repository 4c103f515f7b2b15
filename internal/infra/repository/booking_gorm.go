package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/noursalon/salon-scheduler/internal/domain/booking"
	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db        *gorm.DB
	txTimeout time.Duration
}

func NewBookingGormRepository(db *gorm.DB, txTimeout time.Duration) *BookingGormRepository {
	if txTimeout <= 0 {
		txTimeout = 10 * time.Second
	}
	return &BookingGormRepository{db: db, txTimeout: txTimeout}
}

// --------------------------------------------------
// Availability rules
// --------------------------------------------------

func (r *BookingGormRepository) CreateRule(
	ctx context.Context,
	rule *models.AvailabilityRule,
) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *BookingGormRepository) DeleteRule(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Delete(&models.AvailabilityRule{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("rule_not_found")
	}
	return nil
}

func (r *BookingGormRepository) ListRules(
	ctx context.Context,
) ([]models.AvailabilityRule, error) {

	var rules []models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Order("specific_date ASC, start_time ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *BookingGormRepository) ListRulesByDate(
	ctx context.Context,
	date string,
) ([]models.AvailabilityRule, error) {

	var rules []models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Where("specific_date = ?", date).
		Order("start_time ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *BookingGormRepository) ListRuleDates(
	ctx context.Context,
) ([]string, error) {

	var dates []string
	if err := r.db.WithContext(ctx).
		Model(&models.AvailabilityRule{}).
		Distinct("specific_date").
		Order("specific_date ASC").
		Pluck("specific_date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

// --------------------------------------------------
// Treatment
// --------------------------------------------------

func (r *BookingGormRepository) GetTreatment(
	ctx context.Context,
	id string,
) (*models.Treatment, error) {

	var treatment models.Treatment
	if err := r.db.WithContext(ctx).
		First(&treatment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("treatment_not_found")
		}
		return nil, err
	}
	return &treatment, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateBooked inserts an appointment iff its interval does not overlap any
// currently booked one. The check and the insert run in a single serializable
// transaction behind a table lock, so two racing bookings cannot both pass
// validation. The whole unit is bounded by the configured wall-clock timeout.
func (r *BookingGormRepository) CreateBooked(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ctx, cancel := context.WithTimeout(ctx, r.txTimeout)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// SHARE ROW EXCLUSIVE blocks concurrent writers (and other lock
		// holders) while allowing plain reads on the availability path.
		if err := tx.Exec(
			"LOCK TABLE appointments IN SHARE ROW EXCLUSIVE MODE",
		).Error; err != nil {
			return err
		}

		var conflicts int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"status = ? AND start_datetime < ? AND end_datetime > ?",
				string(domain.StatusBooked),
				ap.EndDatetime,
				ap.StartDatetime,
			).
			Count(&conflicts).Error; err != nil {
			return err
		}

		if conflicts > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		return tx.Create(ap).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_conflict"):
			return err
		case isSerializationFailure(err):
			// The only competing writer on this table is another booking,
			// so a serialization abort means the slot was just taken.
			return httperr.ErrBusiness("slot_conflict")
		case isLockTimeout(err) || errors.Is(err, context.DeadlineExceeded):
			return httperr.ErrBusiness("tx_timeout")
		default:
			return err
		}
	}
	return nil
}

// --------------------------------------------------
// Appointment (reads)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Treatment").
		First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	status string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Treatment").
		Order("start_datetime ASC")

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListBookedBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_datetime", "end_datetime").
		Where(
			"status = ? AND start_datetime >= ? AND start_datetime < ?",
			string(domain.StatusBooked), start, end,
		).
		Order("start_datetime ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// ListBookedDetailed is the dashboard variant of ListBookedBetween: full
// rows with the treatment preloaded.
func (r *BookingGormRepository) ListBookedDetailed(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Treatment").
		Where(
			"status = ? AND start_datetime >= ? AND start_datetime < ?",
			string(domain.StatusBooked), start, end,
		).
		Order("start_datetime ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
