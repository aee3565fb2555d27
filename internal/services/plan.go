// This file implements PlanService: savings goals, trip plans, and
// subscription renewals.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sakshipatil0812/finance-family/internal/common"
	"github.com/sakshipatil0812/finance-family/internal/dbx"
	"github.com/sakshipatil0812/finance-family/internal/models"
	"github.com/sakshipatil0812/finance-family/internal/repositories/goals"
	"github.com/sakshipatil0812/finance-family/internal/repositories/subscriptions"
	"github.com/sakshipatil0812/finance-family/internal/repositories/trips"
)

// timeNow is a test seam for the clock.
var timeNow = time.Now

// PlanService provides forward-looking operations:
//   - savings goals and contributions toward them
//   - trip plans with estimated budgets
//   - subscriptions and upcoming renewal reminders
type PlanService interface {
	AddGoal(ctx context.Context, name string, target decimal.Decimal, deadline time.Time) (*models.SavingsGoal, error)
	ListGoals(ctx context.Context) ([]models.SavingsGoal, error)
	Contribute(ctx context.Context, goalID string, amount decimal.Decimal) (*models.SavingsGoal, error)
	DeleteGoal(ctx context.Context, id string) error

	AddTrip(ctx context.Context, destination string, start, end time.Time, budget decimal.Decimal, notes string) (*models.Trip, error)
	ListTrips(ctx context.Context) ([]models.Trip, error)
	DeleteTrip(ctx context.Context, id string) error

	AddSubscription(ctx context.Context, name string, amount decimal.Decimal, period models.BillingPeriod, nextRenewal time.Time) (*models.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
	CancelSubscription(ctx context.Context, id string) error
	UpcomingRenewals(ctx context.Context) ([]models.Subscription, error)
	DeleteSubscription(ctx context.Context, id string) error
}

// planService is the concrete PlanService backed by the local database.
type planService struct {
	db             *sql.DB
	renewalsWindow time.Duration
}

// NewPlanService constructs a PlanService bound to the given DB.
// renewalsWindow controls how far ahead UpcomingRenewals looks.
func NewPlanService(db *sql.DB, renewalsWindow time.Duration) PlanService {
	return &planService{db: db, renewalsWindow: renewalsWindow}
}

func (s *planService) getGoalRepo() goals.Repository {
	return goals.NewSQLiteRepository(s.db)
}

func (s *planService) getTripRepo() trips.Repository {
	return trips.NewSQLiteRepository(s.db)
}

func (s *planService) getSubscriptionRepo() subscriptions.Repository {
	return subscriptions.NewSQLiteRepository(s.db)
}

// AddGoal validates and stores a new savings goal with nothing saved yet.
func (s *planService) AddGoal(ctx context.Context, name string, target decimal.Decimal, deadline time.Time) (*models.SavingsGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("goal name is required: %w", common.ErrorValidation)
	}
	if target.Sign() <= 0 {
		return nil, fmt.Errorf("goal target must be positive: %w", common.ErrorValidation)
	}

	g := &models.SavingsGoal{
		Id:        uuid.NewString(),
		Name:      name,
		Target:    target,
		Saved:     decimal.Zero,
		Deadline:  deadline,
		CreatedAt: timeNow().UTC(),
	}
	if err := s.getGoalRepo().CreateOrUpdate(ctx, g); err != nil {
		return nil, fmt.Errorf("error saving goal: %w", err)
	}
	return g, nil
}

func (s *planService) ListGoals(ctx context.Context) ([]models.SavingsGoal, error) {
	return s.getGoalRepo().GetAll(ctx)
}

// Contribute adds money to a goal. The read-modify-write on the saved amount
// runs inside a transaction so a crash cannot leave a half-applied update.
func (s *planService) Contribute(ctx context.Context, goalID string, amount decimal.Decimal) (*models.SavingsGoal, error) {
	if amount.Sign() <= 0 {
		return nil, common.ErrorNegativeAmount
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := goals.NewSQLiteRepository(tx)
		return repo.AddContribution(ctx, goalID, amount)
	}); err != nil {
		return nil, err
	}

	return s.getGoalRepo().GetByID(ctx, goalID)
}

func (s *planService) DeleteGoal(ctx context.Context, id string) error {
	return s.getGoalRepo().DeleteByID(ctx, id)
}

// AddTrip validates and stores a new trip plan.
func (s *planService) AddTrip(ctx context.Context, destination string, start, end time.Time, budget decimal.Decimal, notes string) (*models.Trip, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, fmt.Errorf("destination is required: %w", common.ErrorValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("trip end date precedes start date: %w", common.ErrorValidation)
	}
	if budget.IsNegative() {
		return nil, common.ErrorNegativeAmount
	}

	trip := &models.Trip{
		Id:          uuid.NewString(),
		Destination: destination,
		StartDate:   start.UTC(),
		EndDate:     end.UTC(),
		Budget:      budget,
		Notes:       strings.TrimSpace(notes),
	}
	if err := s.getTripRepo().CreateOrUpdate(ctx, trip); err != nil {
		return nil, fmt.Errorf("error saving trip: %w", err)
	}
	return trip, nil
}

func (s *planService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	return s.getTripRepo().GetAll(ctx)
}

func (s *planService) DeleteTrip(ctx context.Context, id string) error {
	return s.getTripRepo().DeleteByID(ctx, id)
}

// AddSubscription validates and stores a new active subscription.
func (s *planService) AddSubscription(ctx context.Context, name string, amount decimal.Decimal, period models.BillingPeriod, nextRenewal time.Time) (*models.Subscription, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("subscription name is required: %w", common.ErrorValidation)
	}
	if period != models.BillingMonthly && period != models.BillingYearly {
		return nil, fmt.Errorf("unknown billing period %q: %w", period, common.ErrorValidation)
	}
	if amount.IsNegative() {
		return nil, common.ErrorNegativeAmount
	}

	sub := &models.Subscription{
		Id:          uuid.NewString(),
		Name:        name,
		Amount:      amount,
		Period:      period,
		NextRenewal: nextRenewal.UTC(),
		Active:      true,
	}
	if err := s.getSubscriptionRepo().CreateOrUpdate(ctx, sub); err != nil {
		return nil, fmt.Errorf("error saving subscription: %w", err)
	}
	return sub, nil
}

func (s *planService) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	return s.getSubscriptionRepo().GetAll(ctx)
}

// CancelSubscription marks a subscription inactive, keeping its history.
func (s *planService) CancelSubscription(ctx context.Context, id string) error {
	repo := s.getSubscriptionRepo()
	sub, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	sub.Active = false
	return repo.CreateOrUpdate(ctx, sub)
}

// UpcomingRenewals lists active subscriptions renewing within the configured
// window from now.
func (s *planService) UpcomingRenewals(ctx context.Context) ([]models.Subscription, error) {
	cutoff := timeNow().UTC().Add(s.renewalsWindow)
	return s.getSubscriptionRepo().DueBefore(ctx, cutoff)
}

func (s *planService) DeleteSubscription(ctx context.Context, id string) error {
	return s.getSubscriptionRepo().DeleteByID(ctx, id)
}
