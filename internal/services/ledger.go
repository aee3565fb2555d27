// Package services contains the application services for the famfin CLI.
// This file implements LedgerService: expense tracking, per-category monthly
// budgets, and the month report that compares the two.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sakshipatil0812/finance-family/internal/common"
	"github.com/sakshipatil0812/finance-family/internal/models"
	"github.com/sakshipatil0812/finance-family/internal/repositories/budgets"
	"github.com/sakshipatil0812/finance-family/internal/repositories/expenses"
)

// MonthlyReport summarizes one month bucket: total spending, per-category
// totals, and how each configured budget fared against actual spending.
type MonthlyReport struct {
	Month      string
	Total      decimal.Decimal
	ByCategory map[string]decimal.Decimal
	Budgets    []models.BudgetReportLine
}

// LedgerService provides expense and budget operations:
//   - AddExpense / ListExpenses / DeleteExpense: spending records
//   - SetBudget / ListBudgets / DeleteBudget: monthly category limits
//   - MonthlyReport: spending vs budgets for one month
type LedgerService interface {
	AddExpense(ctx context.Context, category, note string, amount decimal.Decimal, spentAt time.Time) (*models.Expense, error)
	ListExpenses(ctx context.Context, month string) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error

	SetBudget(ctx context.Context, category, month string, limit decimal.Decimal) (*models.Budget, error)
	ListBudgets(ctx context.Context, month string) ([]models.Budget, error)
	DeleteBudget(ctx context.Context, id string) error

	MonthlyReport(ctx context.Context, month string) (*MonthlyReport, error)
}

// ledgerService is the concrete LedgerService backed by the local database.
type ledgerService struct {
	db *sql.DB
}

// NewLedgerService constructs a LedgerService bound to the given DB.
func NewLedgerService(db *sql.DB) LedgerService {
	return &ledgerService{db: db}
}

func (s *ledgerService) getExpenseRepo() expenses.Repository {
	return expenses.NewSQLiteRepository(s.db)
}

func (s *ledgerService) getBudgetRepo() budgets.Repository {
	return budgets.NewSQLiteRepository(s.db)
}

// AddExpense validates and stores a new spending record.
func (s *ledgerService) AddExpense(ctx context.Context, category, note string, amount decimal.Decimal, spentAt time.Time) (*models.Expense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("category is required: %w", common.ErrorValidation)
	}
	if amount.IsNegative() {
		return nil, common.ErrorNegativeAmount
	}
	if spentAt.IsZero() {
		spentAt = time.Now().UTC()
	}

	e := &models.Expense{
		Id:       uuid.NewString(),
		Category: category,
		Note:     strings.TrimSpace(note),
		Amount:   amount,
		SpentAt:  spentAt.UTC(),
	}
	if err := s.getExpenseRepo().CreateOrUpdate(ctx, e); err != nil {
		return nil, fmt.Errorf("error saving expense: %w", err)
	}
	return e, nil
}

// ListExpenses returns expenses for one month bucket, or all of them when
// month is empty.
func (s *ledgerService) ListExpenses(ctx context.Context, month string) ([]models.Expense, error) {
	repo := s.getExpenseRepo()
	if month == "" {
		return repo.GetAll(ctx)
	}
	return repo.GetByMonth(ctx, month)
}

func (s *ledgerService) DeleteExpense(ctx context.Context, id string) error {
	return s.getExpenseRepo().DeleteByID(ctx, id)
}

// SetBudget creates or replaces the limit for one (category, month) pair.
func (s *ledgerService) SetBudget(ctx context.Context, category, month string, limit decimal.Decimal) (*models.Budget, error) {
	category = strings.TrimSpace(category)
	if category == "" || month == "" {
		return nil, fmt.Errorf("category and month are required: %w", common.ErrorValidation)
	}
	if limit.IsNegative() {
		return nil, common.ErrorNegativeAmount
	}

	b := &models.Budget{
		Id:       uuid.NewString(),
		Category: category,
		Month:    month,
		Limit:    limit,
	}
	if err := s.getBudgetRepo().CreateOrUpdate(ctx, b); err != nil {
		return nil, fmt.Errorf("error saving budget: %w", err)
	}
	return b, nil
}

func (s *ledgerService) ListBudgets(ctx context.Context, month string) ([]models.Budget, error) {
	return s.getBudgetRepo().GetByMonth(ctx, month)
}

func (s *ledgerService) DeleteBudget(ctx context.Context, id string) error {
	return s.getBudgetRepo().DeleteByID(ctx, id)
}

// MonthlyReport aggregates spending for the month and lines it up against
// the configured budgets. Categories with spending but no budget appear in
// ByCategory only.
func (s *ledgerService) MonthlyReport(ctx context.Context, month string) (*MonthlyReport, error) {
	totals, err := s.getExpenseRepo().TotalByCategory(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("error aggregating expenses: %w", err)
	}

	monthBudgets, err := s.getBudgetRepo().GetByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("error loading budgets: %w", err)
	}

	report := &MonthlyReport{
		Month:      month,
		Total:      decimal.Zero,
		ByCategory: totals,
	}
	for _, amount := range totals {
		report.Total = report.Total.Add(amount)
	}

	for _, b := range monthBudgets {
		spent := totals[b.Category]
		report.Budgets = append(report.Budgets, models.BudgetReportLine{
			Category:  b.Category,
			Limit:     b.Limit,
			Spent:     spent,
			Remaining: b.Limit.Sub(spent),
		})
	}
	sort.Slice(report.Budgets, func(i, j int) bool {
		return report.Budgets[i].Category < report.Budgets[j].Category
	})

	return report, nil
}
