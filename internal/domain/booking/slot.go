package booking

import "time"

// TimeSlot is a candidate interval derived from an availability rule.
// Available=false means it overlaps a booked appointment; the list still
// carries it so admin views can show occupied slots.
type TimeSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

type CreatedBy string

const (
	CreatedByAdmin    CreatedBy = "admin"
	CreatedByCustomer CreatedBy = "customer"
)

func (c CreatedBy) Valid() bool {
	return c == CreatedByAdmin || c == CreatedByCustomer
}
