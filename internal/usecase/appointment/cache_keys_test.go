package appointment

import (
	"testing"
	"time"

	"github.com/noursalon/salon-scheduler/internal/models"
)

func TestSlotCacheKeys_SameDay(t *testing.T) {
	ap := &models.Appointment{
		StartDatetime: time.Date(2025, time.June, 1, 6, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2025, time.June, 1, 6, 30, 0, 0, time.UTC),
	}

	keys := slotCacheKeys(ap, jerusalem(t))
	if len(keys) != 1 {
		t.Fatalf("expected one key for a same-day booking, got %v", keys)
	}
	if keys[0] != "availability:slots:2025-06-01" {
		t.Fatalf("wrong key: %s", keys[0])
	}
}

func TestSlotCacheKeys_CrossesMidnight(t *testing.T) {
	// 23:30 to 00:30 Jerusalem local is 20:30 to 21:30 UTC in June.
	ap := &models.Appointment{
		StartDatetime: time.Date(2025, time.June, 1, 20, 30, 0, 0, time.UTC),
		EndDatetime:   time.Date(2025, time.June, 1, 21, 30, 0, 0, time.UTC),
	}

	keys := slotCacheKeys(ap, jerusalem(t))
	if len(keys) != 2 {
		t.Fatalf("booking ending past midnight must invalidate both dates, got %v", keys)
	}
	if keys[0] != "availability:slots:2025-06-01" || keys[1] != "availability:slots:2025-06-02" {
		t.Fatalf("wrong keys: %v", keys)
	}
}
