package budgets

import (
	"context"

	"github.com/sakshipatil0812/finance-family/internal/models"
)

// Repository stores per-category monthly spending limits. At most one budget
// row exists per (category, month) pair; writes for an existing pair update
// the limit in place.
type Repository interface {
	// CreateOrUpdate upserts a budget, keyed by (category, month).
	CreateOrUpdate(ctx context.Context, budget *models.Budget) error

	// GetByCategory returns the budget for one category in a month bucket,
	// or common.ErrorNotFound.
	GetByCategory(ctx context.Context, category, month string) (*models.Budget, error)

	// GetByMonth returns every budget in a month bucket, ordered by category.
	GetByMonth(ctx context.Context, month string) ([]models.Budget, error)

	// DeleteByID removes a budget. Missing ids yield common.ErrorNotFound.
	DeleteByID(ctx context.Context, id string) error
}
