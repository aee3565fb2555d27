package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingPeriod classifies how often a subscription renews.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// Subscription is a recurring payment the household wants reminders for.
type Subscription struct {
	Id   string
	Name string

	Amount decimal.Decimal
	Period BillingPeriod

	// NextRenewal is the next date the subscription charges, in UTC.
	NextRenewal time.Time

	Active bool
}

// MonthlyCost normalizes the subscription price to a per-month figure.
func (s *Subscription) MonthlyCost() decimal.Decimal {
	if s.Period == BillingYearly {
		return s.Amount.Div(decimal.NewFromInt(12)).Round(2)
	}
	return s.Amount
}
