package appointment

import (
	"context"

	domain "github.com/noursalon/salon-scheduler/internal/domain/booking"
	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	status string,
) ([]models.Appointment, error) {

	switch status {
	case "", string(domain.StatusBooked), string(domain.StatusCanceled):
	default:
		return nil, httperr.ErrBusiness("invalid_status")
	}

	aps, err := uc.repo.ListAppointments(ctx, status)
	if err != nil {
		return nil, err
	}
	if aps == nil {
		aps = []models.Appointment{}
	}
	return aps, nil
}
