package booking

import (
	"testing"
	"time"

	"github.com/noursalon/salon-scheduler/internal/models"
)

func at(h, m int) time.Time {
	return time.Date(2025, time.June, 1, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical", at(9, 0), at(9, 30), at(9, 0), at(9, 30), true},
		{"a starts inside b", at(9, 15), at(9, 45), at(9, 0), at(9, 30), true},
		{"a ends inside b", at(8, 45), at(9, 15), at(9, 0), at(9, 30), true},
		{"a contains b", at(8, 0), at(10, 0), at(9, 0), at(9, 30), true},
		{"b contains a", at(9, 10), at(9, 20), at(9, 0), at(9, 30), true},
		{"touching end-to-start", at(8, 30), at(9, 0), at(9, 0), at(9, 30), false},
		{"touching start-to-end", at(9, 30), at(10, 0), at(9, 0), at(9, 30), false},
		{"disjoint", at(11, 0), at(11, 30), at(9, 0), at(9, 30), false},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
		// Overlap is symmetric.
		if got := Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
			t.Errorf("%s (swapped): expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	if InitialStatus() != StatusBooked {
		t.Fatalf("initial status must be booked")
	}
	if err := CanCancel(StatusBooked); err != nil {
		t.Fatalf("booked must be cancelable: %v", err)
	}
	if err := CanCancel(StatusCanceled); err == nil {
		t.Fatalf("canceled must not transition again")
	}
}

func TestCancelTransition(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusBooked)}
	now := at(12, 0)

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("booked must cancel: %v", err)
	}
	if ap.Status != string(StatusCanceled) {
		t.Fatalf("expected canceled, got %s", ap.Status)
	}
	if ap.CanceledAt == nil || !ap.CanceledAt.Equal(now) {
		t.Fatalf("cancel must stamp the time, got %v", ap.CanceledAt)
	}

	stamp := *ap.CanceledAt
	if err := Cancel(ap, at(13, 0)); err == nil {
		t.Fatalf("second cancel must be rejected by the transition")
	}
	if !ap.CanceledAt.Equal(stamp) {
		t.Fatalf("rejected transition must not restamp")
	}
}
