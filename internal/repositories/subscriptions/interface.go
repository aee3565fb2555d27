package subscriptions

import (
	"context"
	"time"

	"github.com/sakshipatil0812/finance-family/internal/models"
)

// Repository describes CRUD and query operations for subscriptions.
type Repository interface {
	// CreateOrUpdate inserts a new subscription or updates an existing one by Id.
	CreateOrUpdate(ctx context.Context, sub *models.Subscription) error

	// GetByID returns a subscription by its identifier, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Subscription, error)

	// GetAll returns all subscriptions ordered by next renewal date.
	GetAll(ctx context.Context) ([]models.Subscription, error)

	// DueBefore returns active subscriptions renewing strictly before the
	// given cutoff, soonest first.
	DueBefore(ctx context.Context, cutoff time.Time) ([]models.Subscription, error)

	// DeleteByID removes a subscription. Missing ids yield common.ErrorNotFound.
	DeleteByID(ctx context.Context, id string) error
}
