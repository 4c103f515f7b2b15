package timezone

import (
	"testing"
	"time"
)

func TestParseHM(t *testing.T) {
	h, m, err := ParseHM("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 9 || m != 30 {
		t.Fatalf("expected 9:30, got %d:%d", h, m)
	}

	for _, bad := range []string{"", "9:30:00", "25:00", "09:61", "morning"} {
		if _, _, err := ParseHM(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestAt_ResolvesWallClockInBusinessZone(t *testing.T) {
	loc := Location("Asia/Jerusalem")
	date, err := ParseDate("2025-06-01", loc)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}

	got, err := At(date, "16:00", loc)
	if err != nil {
		t.Fatalf("At: %v", err)
	}

	// Israel is UTC+3 in June, so 16:00 wall-clock is 13:00 UTC. A
	// UTC-shifted implementation would be off by the zone offset.
	want := time.Date(2025, time.June, 1, 13, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want.Format(time.RFC3339), got.Format(time.RFC3339))
	}
	if got.Format("15:04") != "16:00" {
		t.Fatalf("expected local wall-clock 16:00, got %s", got.Format("15:04"))
	}
}

func TestDayBounds(t *testing.T) {
	loc := Location("Asia/Jerusalem")
	date, _ := ParseDate("2025-06-01", loc)

	start, end := DayBounds(date, loc)
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Fatalf("expected midnight start, got %s", start)
	}
	if got := end.Sub(start); got != 24*time.Hour {
		t.Fatalf("expected 24h day, got %s", got)
	}
	if FormatDate(start, loc) != "2025-06-01" {
		t.Fatalf("day start formats as %s", FormatDate(start, loc))
	}
}

func TestFormatDate_UsesBusinessZoneNotUTC(t *testing.T) {
	loc := Location("Asia/Jerusalem")

	// 23:30 UTC on May 31 is already June 1 in Israel.
	instant := time.Date(2025, time.May, 31, 23, 30, 0, 0, time.UTC)
	if got := FormatDate(instant, loc); got != "2025-06-01" {
		t.Fatalf("expected 2025-06-01, got %s", got)
	}
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	if loc.String() != DefaultTimezone {
		t.Fatalf("expected fallback to %s, got %s", DefaultTimezone, loc)
	}
}
