package appointment

import (
	"time"

	"github.com/noursalon/salon-scheduler/internal/models"
	"github.com/noursalon/salon-scheduler/internal/timezone"
)

// slotCacheKeys lists the cached slot lists a booking write can stale: one
// per business-local date the interval touches. A late-evening appointment
// can end past midnight and land on the next date's list too.
func slotCacheKeys(ap *models.Appointment, loc *time.Location) []string {
	startDate := timezone.FormatDate(ap.StartDatetime, loc)
	keys := []string{"availability:slots:" + startDate}
	if endDate := timezone.FormatDate(ap.EndDatetime, loc); endDate != startDate {
		keys = append(keys, "availability:slots:"+endDate)
	}
	return keys
}
