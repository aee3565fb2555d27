package expenses

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sakshipatil0812/finance-family/internal/models"
)

// Repository describes CRUD and query operations for Expense records.
// Implementations are typically backed by the local SQLite database.
type Repository interface {
	// CreateOrUpdate inserts a new expense or updates an existing one by Id.
	CreateOrUpdate(ctx context.Context, expense *models.Expense) error

	// GetByID returns an expense by its identifier, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Expense, error)

	// GetAll returns all expenses, newest first.
	GetAll(ctx context.Context) ([]models.Expense, error)

	// GetByMonth returns expenses within one "YYYY-MM" bucket, newest first.
	GetByMonth(ctx context.Context, month string) ([]models.Expense, error)

	// TotalByCategory sums amounts per category within one month bucket.
	TotalByCategory(ctx context.Context, month string) (map[string]decimal.Decimal, error)

	// DeleteByID removes an expense. Missing ids yield common.ErrorNotFound.
	DeleteByID(ctx context.Context, id string) error
}
