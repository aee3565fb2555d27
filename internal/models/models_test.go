package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthOf(t *testing.T) {
	ts := time.Date(2026, 8, 29, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2026-08", MonthOf(ts))

	e := &Expense{SpentAt: ts}
	assert.Equal(t, "2026-08", e.Month())
}

func TestSavingsGoal_Progress(t *testing.T) {
	g := &SavingsGoal{
		Target: decimal.NewFromInt(1000),
		Saved:  decimal.NewFromInt(250),
	}
	require.True(t, g.Progress().Equal(decimal.NewFromInt(25)))
	require.False(t, g.Reached())

	g.Saved = decimal.NewFromInt(1000)
	require.True(t, g.Reached())
	require.True(t, g.Progress().Equal(decimal.NewFromInt(100)))
}

func TestSavingsGoal_Progress_CapsAtHundred(t *testing.T) {
	g := &SavingsGoal{
		Target: decimal.NewFromInt(100),
		Saved:  decimal.NewFromInt(150),
	}
	require.True(t, g.Progress().Equal(decimal.NewFromInt(100)))
}

func TestSavingsGoal_Progress_ZeroTarget(t *testing.T) {
	g := &SavingsGoal{Target: decimal.Zero, Saved: decimal.Zero}
	require.True(t, g.Progress().Equal(decimal.NewFromInt(100)))
}

func TestTrip_Nights(t *testing.T) {
	start := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)

	trip := &Trip{StartDate: start, EndDate: start.AddDate(0, 0, 5)}
	assert.Equal(t, 5, trip.Nights())

	backwards := &Trip{StartDate: start, EndDate: start.AddDate(0, 0, -1)}
	assert.Equal(t, 0, backwards.Nights())
}

func TestSubscription_MonthlyCost(t *testing.T) {
	monthly := &Subscription{Amount: decimal.NewFromInt(199), Period: BillingMonthly}
	require.True(t, monthly.MonthlyCost().Equal(decimal.NewFromInt(199)))

	yearly := &Subscription{Amount: decimal.NewFromInt(1200), Period: BillingYearly}
	require.True(t, yearly.MonthlyCost().Equal(decimal.NewFromInt(100)))
}

func TestBudgetReportLine_Over(t *testing.T) {
	ok := BudgetReportLine{Remaining: decimal.NewFromInt(10)}
	assert.False(t, ok.Over())

	over := BudgetReportLine{Remaining: decimal.NewFromInt(-1)}
	assert.True(t, over.Over())
}
