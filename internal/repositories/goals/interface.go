package goals

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sakshipatil0812/finance-family/internal/models"
)

// Repository describes CRUD operations for savings goals.
type Repository interface {
	// CreateOrUpdate inserts a new goal or updates an existing one by Id.
	CreateOrUpdate(ctx context.Context, goal *models.SavingsGoal) error

	// GetByID returns a goal by its identifier, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.SavingsGoal, error)

	// GetAll returns all goals, oldest first.
	GetAll(ctx context.Context) ([]models.SavingsGoal, error)

	// AddContribution increases the saved amount of a goal. Run it inside a
	// transaction when the caller needs read-modify-write atomicity.
	AddContribution(ctx context.Context, id string, amount decimal.Decimal) error

	// DeleteByID removes a goal. Missing ids yield common.ErrorNotFound.
	DeleteByID(ctx context.Context, id string) error
}
