// Package subscriptions provides the persistence layer for recurring payments.
package subscriptions

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
//
// Renewal dates are stored as RFC 3339 text, which sorts and compares
// lexicographically in the same order as the timestamps themselves.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateOrUpdate upserts a subscription by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, s *models.Subscription) error {
	query := `INSERT INTO subscriptions (id, name, amount, period, next_renewal, active)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				amount = excluded.amount,
				period = excluded.period,
				next_renewal = excluded.next_renewal,
				active = excluded.active
	`
	_, err := r.db.ExecContext(ctx, query,
		s.Id, s.Name, s.Amount.String(), string(s.Period),
		s.NextRenewal.UTC().Format(time.RFC3339), s.Active)
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return nil
}

// GetByID returns a single subscription by id.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Subscription, error) {
	query := `SELECT id, name, amount, period, next_renewal, active FROM subscriptions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSubscription(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return s, nil
}

// GetAll lists every subscription ordered by next renewal date.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Subscription, error) {
	query := `SELECT id, name, amount, period, next_renewal, active FROM subscriptions ORDER BY next_renewal`
	return r.querySubscriptions(ctx, query)
}

// DueBefore lists active subscriptions renewing strictly before cutoff.
func (r *SQLiteRepository) DueBefore(ctx context.Context, cutoff time.Time) ([]models.Subscription, error) {
	query := `SELECT id, name, amount, period, next_renewal, active FROM subscriptions
			WHERE active = 1 AND next_renewal < ? ORDER BY next_renewal`
	return r.querySubscriptions(ctx, query, cutoff.UTC().Format(time.RFC3339))
}

// DeleteByID removes a subscription. It expects exactly one row to be affected.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
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

func (r *SQLiteRepository) querySubscriptions(ctx context.Context, query string, args ...any) ([]models.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select subscriptions: %w", err)
	}
	defer rows.Close()

	var result []models.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanSubscription(scan func(dest ...any) error) (*models.Subscription, error) {
	var (
		s          models.Subscription
		amountStr  string
		periodStr  string
		renewalStr string
	)
	if err := scan(&s.Id, &s.Name, &amountStr, &periodStr, &renewalStr, &s.Active); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored amount %q: %w", amountStr, err)
	}
	s.Amount = amount
	s.Period = models.BillingPeriod(periodStr)

	renewal, err := time.Parse(time.RFC3339, renewalStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored renewal date %q: %w", renewalStr, err)
	}
	s.NextRenewal = renewal

	return &s, nil
}
