package availability

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	domain "github.com/noursalon/salon-scheduler/internal/domain/booking"
	"github.com/noursalon/salon-scheduler/internal/models"
	"github.com/noursalon/salon-scheduler/internal/timezone"
)

// fakeRepo serves canned rules and appointments; only the read methods the
// resolver touches do real work.
type fakeRepo struct {
	rules []models.AvailabilityRule
	appts []models.Appointment
}

func (f *fakeRepo) CreateRule(ctx context.Context, rule *models.AvailabilityRule) error {
	f.rules = append(f.rules, *rule)
	return nil
}

func (f *fakeRepo) DeleteRule(ctx context.Context, id string) error { return nil }

func (f *fakeRepo) ListRules(ctx context.Context) ([]models.AvailabilityRule, error) {
	return f.rules, nil
}

func (f *fakeRepo) ListRulesByDate(ctx context.Context, date string) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, r := range f.rules {
		if r.SpecificDate == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListRuleDates(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, r := range f.rules {
		if !seen[r.SpecificDate] {
			seen[r.SpecificDate] = true
			out = append(out, r.SpecificDate)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetTreatment(ctx context.Context, id string) (*models.Treatment, error) {
	return nil, nil
}

func (f *fakeRepo) CreateBooked(ctx context.Context, ap *models.Appointment) error {
	f.appts = append(f.appts, *ap)
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) ListAppointments(ctx context.Context, status string) ([]models.Appointment, error) {
	return f.appts, nil
}

func (f *fakeRepo) ListBookedBetween(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appts {
		if ap.Status != string(domain.StatusBooked) {
			continue
		}
		if !ap.StartDatetime.Before(start) && ap.StartDatetime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookedDetailed(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	return f.ListBookedBetween(ctx, start, end)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	for i := range f.appts {
		if f.appts[i].ID == ap.ID {
			f.appts[i] = *ap
			return nil
		}
	}
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// nopCache misses every read and swallows writes, for tests that are not
// about caching.
type nopCache struct{}

func (nopCache) GetJSON(ctx context.Context, key string, dest any) bool { return false }

func (nopCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {}

func (nopCache) Del(ctx context.Context, keys ...string) {}

// memCache keeps entries until deleted, ignoring TTLs, so tests can exercise
// the hit path deterministically.
type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (m *memCache) GetJSON(ctx context.Context, key string, dest any) bool {
	raw, ok := m.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (m *memCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if raw, err := json.Marshal(value); err == nil {
		m.entries[key] = raw
	}
}

func (m *memCache) Del(ctx context.Context, keys ...string) {
	for _, k := range keys {
		delete(m.entries, k)
	}
}

var (
	_ Cache = nopCache{}
	_ Cache = (*memCache)(nil)
)

// ---------------------------------------------------------------

const testDate = "2025-06-01"

func testLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jerusalem")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func resolver(t *testing.T, repo *fakeRepo, now time.Time) *GetAvailableTimeSlots {
	t.Helper()
	uc := NewGetAvailableTimeSlots(repo, nopCache{}, testLoc(t))
	uc.now = func() time.Time { return now }
	return uc
}

func rule(date, start, end string, interval int) models.AvailabilityRule {
	return models.AvailabilityRule{
		ID:                  date + start,
		SpecificDate:        date,
		StartTime:           start,
		EndTime:             end,
		SlotIntervalMinutes: interval,
	}
}

func wallClock(t *testing.T, hm string) time.Time {
	t.Helper()
	loc := testLoc(t)
	date, _ := timezone.ParseDate(testDate, loc)
	instant, err := timezone.At(date, hm, loc)
	if err != nil {
		t.Fatalf("wallClock %s: %v", hm, err)
	}
	return instant
}

func TestGetSlots_BasicScenario(t *testing.T) {
	repo := &fakeRepo{rules: []models.AvailabilityRule{
		rule(testDate, "09:00", "10:00", 30),
	}}
	uc := resolver(t, repo, wallClock(t, "00:30"))

	slots, err := uc.Execute(context.Background(), testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(wallClock(t, "09:00")) || !slots[0].End.Equal(wallClock(t, "09:30")) {
		t.Fatalf("first slot wrong: %v", slots[0])
	}
	if !slots[1].Start.Equal(wallClock(t, "09:30")) || !slots[1].End.Equal(wallClock(t, "10:00")) {
		t.Fatalf("second slot wrong: %v", slots[1])
	}
	for i, s := range slots {
		if !s.Available {
			t.Fatalf("slot %d should be available", i)
		}
	}
}

func TestGetSlots_BookedSlotMarkedUnavailable(t *testing.T) {
	repo := &fakeRepo{
		rules: []models.AvailabilityRule{rule(testDate, "09:00", "10:00", 30)},
		appts: []models.Appointment{{
			ID:            "ap1",
			Status:        string(domain.StatusBooked),
			StartDatetime: wallClock(t, "09:00"),
			EndDatetime:   wallClock(t, "09:30"),
		}},
	}
	uc := resolver(t, repo, wallClock(t, "00:30"))

	slots, err := uc.Execute(context.Background(), testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].Available {
		t.Fatalf("booked slot must be unavailable")
	}
	if !slots[1].Available {
		t.Fatalf("free slot must stay available")
	}
}

func TestGetSlots_CanceledAppointmentFreesCapacity(t *testing.T) {
	repo := &fakeRepo{
		rules: []models.AvailabilityRule{rule(testDate, "09:00", "10:00", 30)},
		appts: []models.Appointment{{
			ID:            "ap1",
			Status:        string(domain.StatusCanceled),
			StartDatetime: wallClock(t, "09:00"),
			EndDatetime:   wallClock(t, "09:30"),
		}},
	}
	uc := resolver(t, repo, wallClock(t, "00:30"))

	slots, _ := uc.Execute(context.Background(), testDate)
	if len(slots) != 2 || !slots[0].Available {
		t.Fatalf("canceled appointment must not block its slot")
	}
}

func TestGetSlots_MultiRuleIndependence(t *testing.T) {
	repo := &fakeRepo{rules: []models.AvailabilityRule{
		rule(testDate, "09:00", "12:00", 30),
		rule(testDate, "14:00", "17:00", 60),
	}}
	uc := resolver(t, repo, wallClock(t, "00:30"))

	slots, err := uc.Execute(context.Background(), testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 9 {
		t.Fatalf("expected 6+3=9 slots, got %d", len(slots))
	}
	// Morning run first, afternoon second, each contiguous.
	if !slots[5].End.Equal(wallClock(t, "12:00")) {
		t.Fatalf("morning run should end at 12:00, got %v", slots[5].End)
	}
	if !slots[6].Start.Equal(wallClock(t, "14:00")) {
		t.Fatalf("afternoon run should start at 14:00, got %v", slots[6].Start)
	}
}

func TestGetSlots_PastSlotsExcluded(t *testing.T) {
	repo := &fakeRepo{rules: []models.AvailabilityRule{
		rule(testDate, "09:00", "10:00", 30),
	}}

	// 09:15 "today": the 09:00 slot already started, 09:30 has not.
	uc := resolver(t, repo, wallClock(t, "09:15"))

	slots, _ := uc.Execute(context.Background(), testDate)
	if len(slots) != 1 {
		t.Fatalf("expected 1 future slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(wallClock(t, "09:30")) {
		t.Fatalf("expected 09:30 slot, got %v", slots[0].Start)
	}

	// A slot starting exactly now is also excluded.
	uc = resolver(t, repo, wallClock(t, "09:30"))
	slots, _ = uc.Execute(context.Background(), testDate)
	if len(slots) != 0 {
		t.Fatalf("slot starting exactly now must be excluded, got %d", len(slots))
	}
}

func TestGetSlots_RemainderDropped(t *testing.T) {
	repo := &fakeRepo{rules: []models.AvailabilityRule{
		rule(testDate, "09:00", "10:00", 45),
	}}
	uc := resolver(t, repo, wallClock(t, "00:30"))

	slots, _ := uc.Execute(context.Background(), testDate)
	if len(slots) != 1 {
		t.Fatalf("uneven window must drop the remainder, got %d slots", len(slots))
	}
	if !slots[0].End.Equal(wallClock(t, "09:45")) {
		t.Fatalf("expected slot to end 09:45, got %v", slots[0].End)
	}
}

func TestGetSlots_NoRulesIsEmptyNotError(t *testing.T) {
	uc := resolver(t, &fakeRepo{}, wallClock(t, "00:30"))

	slots, err := uc.Execute(context.Background(), testDate)
	if err != nil {
		t.Fatalf("no rules must not error: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Fatalf("expected empty slice, got %v", slots)
	}
}

func TestGetSlots_IdempotentRead(t *testing.T) {
	repo := &fakeRepo{
		rules: []models.AvailabilityRule{rule(testDate, "09:00", "12:00", 30)},
		appts: []models.Appointment{{
			ID:            "ap1",
			Status:        string(domain.StatusBooked),
			StartDatetime: wallClock(t, "10:00"),
			EndDatetime:   wallClock(t, "10:30"),
		}},
	}
	uc := resolver(t, repo, wallClock(t, "00:30"))

	first, err := uc.Execute(context.Background(), testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two reads without writes must match")
	}
}

func TestGetSlots_CachedReadExcludesStartedSlots(t *testing.T) {
	repo := &fakeRepo{rules: []models.AvailabilityRule{
		rule(testDate, "09:00", "10:00", 30),
	}}
	c := newMemCache()
	uc := NewGetAvailableTimeSlots(repo, c, testLoc(t))

	// A read just before opening caches both slots.
	uc.now = func() time.Time { return wallClock(t, "08:59") }
	first, err := uc.Execute(context.Background(), testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 slots before opening, got %d", len(first))
	}

	// Drop the rules so a second read can only be served from the cache.
	repo.rules = nil

	// Minutes later the 09:00 slot has started; the cached list must not
	// resurface it.
	uc.now = func() time.Time { return wallClock(t, "09:10") }
	second, err := uc.Execute(context.Background(), testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected only the 09:30 slot, got %d", len(second))
	}
	if !second[0].Start.Equal(wallClock(t, "09:30")) {
		t.Fatalf("expected 09:30 slot, got %v", second[0].Start)
	}
}

func TestGetSlots_InvalidDate(t *testing.T) {
	uc := resolver(t, &fakeRepo{}, wallClock(t, "00:30"))
	if _, err := uc.Execute(context.Background(), "01-06-2025"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}
