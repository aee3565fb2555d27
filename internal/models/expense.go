// Package models defines the data types persisted by the famfin CLI:
// expenses, monthly budgets, savings goals, trip plans, and subscriptions.
// Money amounts use decimal.Decimal to avoid float rounding in sums.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthKey is the canonical "YYYY-MM" form used to bucket expenses and
// budgets by calendar month.
const MonthKey = "2006-01"

// MonthOf returns the month bucket for a point in time, e.g. "2026-08".
func MonthOf(t time.Time) string {
	return t.Format(MonthKey)
}

// Expense is a single spending record.
type Expense struct {
	// Id is a globally unique identifier for the expense.
	Id string

	// Category groups the expense for budgeting ("groceries", "transport", ...).
	Category string

	// Note is a free-form description entered by the user.
	Note string

	// Amount is the spent sum in the configured currency.
	Amount decimal.Decimal

	// SpentAt is when the money was spent, in UTC.
	SpentAt time.Time
}

// Month returns the month bucket this expense falls into.
func (e *Expense) Month() string {
	return MonthOf(e.SpentAt)
}
