package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal tracks progress toward a target amount.
type SavingsGoal struct {
	Id   string
	Name string

	// Target is the amount the household wants to reach.
	Target decimal.Decimal

	// Saved is the sum of contributions made so far.
	Saved decimal.Decimal

	// Deadline is optional; the zero value means no deadline.
	Deadline time.Time

	CreatedAt time.Time
}

// Progress returns saved/target as a percentage in [0, 100].
// A goal with a non-positive target reads as fully funded.
func (g *SavingsGoal) Progress() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if g.Target.Sign() <= 0 {
		return hundred
	}
	p := g.Saved.Div(g.Target).Mul(hundred)
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// Reached reports whether the saved amount covers the target.
func (g *SavingsGoal) Reached() bool {
	return g.Saved.GreaterThanOrEqual(g.Target)
}
