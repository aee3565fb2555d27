package trips

import (
	"context"

	"github.com/sakshipatil0812/finance-family/internal/models"
)

// Repository describes CRUD operations for trip plans.
type Repository interface {
	// CreateOrUpdate inserts a new trip or updates an existing one by Id.
	CreateOrUpdate(ctx context.Context, trip *models.Trip) error

	// GetByID returns a trip by its identifier, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Trip, error)

	// GetAll returns all trips ordered by start date.
	GetAll(ctx context.Context) ([]models.Trip, error)

	// DeleteByID removes a trip. Missing ids yield common.ErrorNotFound.
	DeleteByID(ctx context.Context, id string) error
}
