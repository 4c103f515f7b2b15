package availability

import (
	"context"
	"time"

	domain "github.com/noursalon/salon-scheduler/internal/domain/booking"
	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/timezone"
)

// GetAvailableTimeSlots resolves a calendar date into the full candidate slot
// list, occupied slots included. The output is advisory: the booking
// transaction re-checks conflicts at commit time regardless of what was
// displayed here.
type GetAvailableTimeSlots struct {
	repo  domain.Repository
	cache Cache
	loc   *time.Location
	now   func() time.Time
}

func NewGetAvailableTimeSlots(
	repo domain.Repository,
	c Cache,
	loc *time.Location,
) *GetAvailableTimeSlots {
	return &GetAvailableTimeSlots{
		repo:  repo,
		cache: c,
		loc:   loc,
		now:   time.Now,
	}
}

func (uc *GetAvailableTimeSlots) Execute(
	ctx context.Context,
	dateStr string,
) ([]domain.TimeSlot, error) {

	date, err := timezone.ParseDate(dateStr, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// A cached list ages for the length of the TTL, during which a slot's
	// start can cross "now", so the cutoff is re-applied on the way out.
	var cached []domain.TimeSlot
	if uc.cache.GetJSON(ctx, slotsCacheKey(dateStr), &cached) {
		return dropStartedSlots(cached, uc.now()), nil
	}

	rules, err := uc.repo.ListRulesByDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	// A date without rules is simply not bookable, not an error.
	if len(rules) == 0 {
		return []domain.TimeSlot{}, nil
	}

	dayStart, dayEnd := timezone.DayBounds(date, uc.loc)
	appointments, err := uc.repo.ListBookedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	slots := make([]domain.TimeSlot, 0)

	// Each rule produces its own contiguous run. Slots are concatenated in
	// rule order (start time ascending), never merged or deduplicated.
	for _, rule := range rules {

		winStart, err := timezone.At(date, rule.StartTime, uc.loc)
		if err != nil {
			continue
		}
		winEnd, err := timezone.At(date, rule.EndTime, uc.loc)
		if err != nil {
			continue
		}

		step := time.Duration(rule.SlotIntervalMinutes) * time.Minute
		if step <= 0 || !winStart.Before(winEnd) {
			continue
		}

		// A slot must fit entirely inside the window; an uneven remainder
		// produces no partial slot.
		for cur := winStart; cur.Add(step).Before(winEnd) || cur.Add(step).Equal(winEnd); cur = cur.Add(step) {

			slotEnd := cur.Add(step)

			// Slots whose start has already passed are dropped outright,
			// which handles "today" without a special branch.
			if !cur.After(now) {
				continue
			}

			available := true
			for _, ap := range appointments {
				if domain.Overlaps(cur, slotEnd, ap.StartDatetime, ap.EndDatetime) {
					available = false
					break
				}
			}

			slots = append(slots, domain.TimeSlot{
				Start:     cur,
				End:       slotEnd,
				Available: available,
			})
		}
	}

	uc.cache.SetJSON(ctx, slotsCacheKey(dateStr), slots, slotsCacheTTL)
	return slots, nil
}

// dropStartedSlots removes slots whose start is at or before now, the same
// cutoff the generation loop applies.
func dropStartedSlots(slots []domain.TimeSlot, now time.Time) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Start.After(now) {
			out = append(out, s)
		}
	}
	return out
}
