package appointment

import (
	"context"
	"time"

	"github.com/noursalon/salon-scheduler/internal/audit"
	"github.com/noursalon/salon-scheduler/internal/cache"
	domain "github.com/noursalon/salon-scheduler/internal/domain/booking"
	"github.com/noursalon/salon-scheduler/internal/models"
	"github.com/noursalon/salon-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit Auditor
	cache *cache.Cache
	loc   *time.Location
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDispatcher Auditor,
	c *cache.Cache,
	loc *time.Location,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDispatcher,
		cache: c,
		loc:   loc,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cancellation is unconditional: no cutoff windows. Re-canceling an
	// already-canceled appointment is a no-op, not an error.
	if err := domain.Cancel(ap, timezone.NowIn(uc.loc)); err == nil {

		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}

		uc.cache.Del(ctx, slotCacheKeys(ap, uc.loc)...)

		uc.audit.Dispatch(audit.Event{
			Actor:    "admin",
			Action:   "appointment_canceled",
			Entity:   "appointment",
			EntityID: ap.ID,
		})
	}

	return ap, nil
}
