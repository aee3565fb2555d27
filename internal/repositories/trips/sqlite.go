// Package trips provides the persistence layer for trip plans.
package trips

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sakshipatil0812/finance-family/internal/common"
	"github.com/sakshipatil0812/finance-family/internal/dbx"
	"github.com/sakshipatil0812/finance-family/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateOrUpdate upserts a trip by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, trip *models.Trip) error {
	query := `INSERT INTO trips (id, destination, start_date, end_date, budget, notes)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET destination = excluded.destination,
				start_date = excluded.start_date,
				end_date = excluded.end_date,
				budget = excluded.budget,
				notes = excluded.notes
	`
	_, err := r.db.ExecContext(ctx, query,
		trip.Id, trip.Destination,
		trip.StartDate.UTC().Format(time.RFC3339), trip.EndDate.UTC().Format(time.RFC3339),
		trip.Budget.String(), trip.Notes)
	if err != nil {
		return fmt.Errorf("failed to upsert trip: %w", err)
	}
	return nil
}

// GetByID returns a single trip by id.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	query := `SELECT id, destination, start_date, end_date, budget, notes FROM trips WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	trip, err := scanTrip(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// GetAll lists every trip ordered by start date.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Trip, error) {
	query := `SELECT id, destination, start_date, end_date, budget, notes FROM trips ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select trips: %w", err)
	}
	defer rows.Close()

	var result []models.Trip
	for rows.Next() {
		trip, err := scanTrip(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *trip)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes a trip. It expects exactly one row to be affected.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrorNotFound
	}
	return nil
}

func scanTrip(scan func(dest ...any) error) (*models.Trip, error) {
	var (
		trip      models.Trip
		startStr  string
		endStr    string
		budgetStr string
	)
	if err := scan(&trip.Id, &trip.Destination, &startStr, &endStr, &budgetStr, &trip.Notes); err != nil {
		return nil, err
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored start date %q: %w", startStr, err)
	}
	trip.StartDate = start

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored end date %q: %w", endStr, err)
	}
	trip.EndDate = end

	budget, err := decimal.NewFromString(budgetStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored budget %q: %w", budgetStr, err)
	}
	trip.Budget = budget

	return &trip, nil
}
