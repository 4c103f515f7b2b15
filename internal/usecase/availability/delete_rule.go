package availability

import (
	"context"

	domain "github.com/noursalon/salon-scheduler/internal/domain/booking"
)

type DeleteRule struct {
	repo  domain.Repository
	cache Cache
}

func NewDeleteRule(repo domain.Repository, c Cache) *DeleteRule {
	return &DeleteRule{repo: repo, cache: c}
}

func (uc *DeleteRule) Execute(ctx context.Context, id string) error {

	// The rule's date is needed to drop the right slot cache entry, so look
	// it up before deleting.
	rules, err := uc.repo.ListRules(ctx)
	if err != nil {
		return err
	}

	date := ""
	for _, r := range rules {
		if r.ID == id {
			date = r.SpecificDate
			break
		}
	}

	if err := uc.repo.DeleteRule(ctx, id); err != nil {
		return err
	}

	keys := []string{datesCacheKey}
	if date != "" {
		keys = append(keys, slotsCacheKey(date))
	}
	uc.cache.Del(ctx, keys...)
	return nil
}
