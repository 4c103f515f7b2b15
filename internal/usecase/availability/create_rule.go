package availability

import (
	"context"

	domain "github.com/noursalon/salon-scheduler/internal/domain/booking"
	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/models"
	"github.com/noursalon/salon-scheduler/internal/timezone"
)

type CreateRuleInput struct {
	SpecificDate        string
	StartTime           string
	EndTime             string
	SlotIntervalMinutes int
}

type CreateRule struct {
	repo  domain.Repository
	cache Cache
}

func NewCreateRule(repo domain.Repository, c Cache) *CreateRule {
	return &CreateRule{repo: repo, cache: c}
}

func (uc *CreateRule) Execute(
	ctx context.Context,
	in CreateRuleInput,
) (*models.AvailabilityRule, error) {

	if _, err := timezone.ParseDate(in.SpecificDate, timezone.Location("")); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	startH, startM, err := timezone.ParseHM(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_start_time")
	}
	endH, endM, err := timezone.ParseHM(in.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_end_time")
	}

	if startH*60+startM >= endH*60+endM {
		return nil, httperr.ErrBusiness("start_after_end")
	}

	if in.SlotIntervalMinutes <= 0 {
		return nil, httperr.ErrBusiness("invalid_interval")
	}

	rule := &models.AvailabilityRule{
		SpecificDate:        in.SpecificDate,
		StartTime:           in.StartTime,
		EndTime:             in.EndTime,
		SlotIntervalMinutes: in.SlotIntervalMinutes,
	}

	if err := uc.repo.CreateRule(ctx, rule); err != nil {
		return nil, err
	}

	uc.cache.Del(ctx, datesCacheKey, slotsCacheKey(in.SpecificDate))
	return rule, nil
}
