package models

import "github.com/shopspring/decimal"

// Budget is a per-category spending limit for one calendar month.
// At most one budget exists per (category, month) pair.
type Budget struct {
	Id       string
	Category string

	// Month is the "YYYY-MM" bucket the limit applies to.
	Month string

	// Limit is the planned ceiling for the category in that month.
	Limit decimal.Decimal
}

// BudgetReportLine pairs a budget with the amount actually spent against it.
type BudgetReportLine struct {
	Category  string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// Over reports whether spending exceeded the limit.
func (l BudgetReportLine) Over() bool {
	return l.Remaining.IsNegative()
}
