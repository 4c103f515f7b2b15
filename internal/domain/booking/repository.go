package booking

import (
	"context"
	"time"

	"github.com/noursalon/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Availability rules --------
	CreateRule(
		ctx context.Context,
		rule *models.AvailabilityRule,
	) error

	DeleteRule(
		ctx context.Context,
		id string,
	) error

	ListRules(
		ctx context.Context,
	) ([]models.AvailabilityRule, error)

	ListRulesByDate(
		ctx context.Context,
		date string,
	) ([]models.AvailabilityRule, error)

	ListRuleDates(
		ctx context.Context,
	) ([]string, error)

	// -------- Treatment --------
	GetTreatment(
		ctx context.Context,
		id string,
	) (*models.Treatment, error)

	// -------- Appointment (create / conflict) --------
	CreateBooked(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (reads) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		status string,
	) ([]models.Appointment, error)

	ListBookedBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListBookedDetailed(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
