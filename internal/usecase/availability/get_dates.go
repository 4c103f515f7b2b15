package availability

import (
	"context"

	domain "github.com/noursalon/salon-scheduler/internal/domain/booking"
)

// GetAvailableDates returns every date that has at least one rule, booked out
// or not. Calendar pickers consume this; consumption is not modelled here.
type GetAvailableDates struct {
	repo  domain.Repository
	cache Cache
}

func NewGetAvailableDates(repo domain.Repository, c Cache) *GetAvailableDates {
	return &GetAvailableDates{repo: repo, cache: c}
}

func (uc *GetAvailableDates) Execute(ctx context.Context) ([]string, error) {

	var dates []string
	if uc.cache.GetJSON(ctx, datesCacheKey, &dates) {
		return dates, nil
	}

	dates, err := uc.repo.ListRuleDates(ctx)
	if err != nil {
		return nil, err
	}
	if dates == nil {
		dates = []string{}
	}

	uc.cache.SetJSON(ctx, datesCacheKey, dates, datesCacheTTL)
	return dates, nil
}
