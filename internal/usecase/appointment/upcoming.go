package appointment

import (
	"context"
	"time"

	domain "github.com/noursalon/salon-scheduler/internal/domain/booking"
	"github.com/noursalon/salon-scheduler/internal/models"
	"github.com/noursalon/salon-scheduler/internal/timezone"
)

// ListUpcoming returns booked appointments starting within the next 7 days,
// for the admin dashboard.
type ListUpcoming struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListUpcoming(repo domain.Repository, loc *time.Location) *ListUpcoming {
	return &ListUpcoming{repo: repo, loc: loc}
}

func (uc *ListUpcoming) Execute(ctx context.Context) ([]models.Appointment, error) {

	now := timezone.NowIn(uc.loc)
	aps, err := uc.repo.ListBookedDetailed(ctx, now, now.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	if aps == nil {
		aps = []models.Appointment{}
	}
	return aps, nil
}
