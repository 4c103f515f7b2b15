package timezone

import (
	"fmt"
	"time"
)

// All rule times and slot boundaries are interpreted in the salon's local
// zone, never the server's. Every function here takes the business location
// explicitly so no caller can fall back to the ambient timezone by accident.

const DefaultTimezone = "Asia/Jerusalem"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// ParseDate parses a YYYY-MM-DD string as midnight business-local time.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

// ParseHM validates an HH:MM string and returns its components.
func ParseHM(hm string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	return t.Hour(), t.Minute(), nil
}

// At resolves an HH:MM wall-clock time on the given date to an absolute
// instant in the business zone.
func At(date time.Time, hm string, loc *time.Location) (time.Time, error) {
	hour, minute, err := ParseHM(hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		hour, minute, 0, 0,
		loc,
	), nil
}

// DayBounds returns [00:00, 24:00) of the date's calendar day in the
// business zone.
func DayBounds(date time.Time, loc *time.Location) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end = start.Add(24 * time.Hour)
	return start, end
}

// FormatDate renders an instant as its business-local YYYY-MM-DD day.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
