package booking

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect: aStart < bEnd && bStart < aEnd.
//
// This is the collapsed form of the three-way test used at both the
// display check and the commit-time check:
//   - a starts inside b, or
//   - a ends inside b, or
//   - a fully contains b.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
