package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is a planned journey with an estimated budget.
type Trip struct {
	Id          string
	Destination string

	StartDate time.Time
	EndDate   time.Time

	// Budget is the estimated total cost of the trip.
	Budget decimal.Decimal

	Notes string
}

// Nights returns the number of nights between start and end dates.
// Malformed ranges (end before start) read as zero.
func (t *Trip) Nights() int {
	if t.EndDate.Before(t.StartDate) {
		return 0
	}
	return int(t.EndDate.Sub(t.StartDate).Hours() / 24)
}
