package appointment

import (
	"context"
	"time"

	"github.com/noursalon/salon-scheduler/internal/audit"
	"github.com/noursalon/salon-scheduler/internal/cache"
	domain "github.com/noursalon/salon-scheduler/internal/domain/booking"
	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerName   string
	Phone          string
	Notes          string
	TreatmentID    string
	StartDatetime  time.Time
	EndDatetime    time.Time
	PriceAtBooking float64
	CreatedBy      string
}

// ======================================================
// USE CASE
// ======================================================

// Confirmer hands a committed booking to the asynchronous confirmation
// pipeline; notify.Dispatcher implements it.
type Confirmer interface {
	DispatchConfirmation(ap *models.Appointment)
}

// Auditor records booking mutations off the request path; audit.Dispatcher
// implements it.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// CreateAppointment is the single write authority for bookings. Whatever the
// availability read showed, the conflict check that counts happens here,
// inside the repository's serializable transaction.
type CreateAppointment struct {
	repo     domain.Repository
	notifier Confirmer
	audit    Auditor
	cache    *cache.Cache
	loc      *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier Confirmer,
	auditDispatcher Auditor,
	c *cache.Cache,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditDispatcher,
		cache:    c,
		loc:      loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !in.EndDatetime.After(in.StartDatetime) {
		return nil, httperr.ErrBusiness("invalid_interval")
	}
	if in.PriceAtBooking < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	createdBy := domain.CreatedBy(in.CreatedBy)
	if in.CreatedBy == "" {
		createdBy = domain.CreatedByCustomer
	}
	if !createdBy.Valid() {
		return nil, httperr.ErrBusiness("invalid_created_by")
	}

	treatment, err := uc.repo.GetTreatment(ctx, in.TreatmentID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		CustomerName:   in.CustomerName,
		Phone:          in.Phone,
		Notes:          in.Notes,
		TreatmentID:    treatment.ID,
		StartDatetime:  in.StartDatetime,
		EndDatetime:    in.EndDatetime,
		PriceAtBooking: in.PriceAtBooking,
		Status:         string(domain.InitialStatus()),
		CreatedBy:      string(createdBy),
	}

	// Atomic check-and-insert; loses surface as slot_conflict.
	if err := uc.repo.CreateBooked(ctx, ap); err != nil {
		return nil, err
	}

	ap.Treatment = *treatment

	uc.cache.Del(ctx, slotCacheKeys(ap, uc.loc)...)

	uc.audit.Dispatch(audit.Event{
		Actor:    string(createdBy),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"start": ap.StartDatetime,
			"end":   ap.EndDatetime,
		},
	})

	// Post-commit, best-effort. A failed confirmation never unwinds the
	// booking.
	uc.notifier.DispatchConfirmation(ap)

	return ap, nil
}
