// Package expenses provides the persistence layer for spending records.
package expenses

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
// Amounts are stored as decimal strings and timestamps as RFC 3339 text, so
// rows survive round-trips without float drift regardless of driver affinity.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateOrUpdate upserts an expense by id. The month bucket is derived from
// SpentAt on every write so filters stay consistent with the timestamp.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, e *models.Expense) error {
	query := `INSERT INTO expenses (id, category, note, amount, spent_at, month)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET category = excluded.category,
				note = excluded.note,
				amount = excluded.amount,
				spent_at = excluded.spent_at,
				month = excluded.month
	`
	_, err := r.db.ExecContext(ctx, query,
		e.Id, e.Category, e.Note, e.Amount.String(), e.SpentAt.UTC().Format(time.RFC3339), e.Month())
	if err != nil {
		return fmt.Errorf("failed to upsert expense: %w", err)
	}
	return nil
}

// GetByID returns a single expense by id.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	query := `SELECT id, category, note, amount, spent_at FROM expenses WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	e, err := scanExpense(row.Scan)
	if err != nil {
		if isNoRows(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return e, nil
}

// GetAll lists every expense, newest first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Expense, error) {
	query := `SELECT id, category, note, amount, spent_at FROM expenses ORDER BY spent_at DESC`
	return r.queryExpenses(ctx, query)
}

// GetByMonth lists expenses within one month bucket, newest first.
func (r *SQLiteRepository) GetByMonth(ctx context.Context, month string) ([]models.Expense, error) {
	query := `SELECT id, category, note, amount, spent_at FROM expenses WHERE month = ? ORDER BY spent_at DESC`
	return r.queryExpenses(ctx, query, month)
}

// TotalByCategory sums spending per category within one month bucket.
// Summation happens in Go because amounts are stored as decimal strings.
func (r *SQLiteRepository) TotalByCategory(ctx context.Context, month string) (map[string]decimal.Decimal, error) {
	query := `SELECT category, amount FROM expenses WHERE month = ?`
	rows, err := r.db.QueryContext(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to select expense totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var category, amountStr string
		if err := rows.Scan(&category, &amountStr); err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored amount %q: %w", amountStr, err)
		}
		totals[category] = totals[category].Add(amount)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}

// DeleteByID removes an expense. It expects exactly one row to be affected.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
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

func (r *SQLiteRepository) queryExpenses(ctx context.Context, query string, args ...any) ([]models.Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select expenses: %w", err)
	}
	defer rows.Close()

	var result []models.Expense
	for rows.Next() {
		e, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func scanExpense(scan func(dest ...any) error) (*models.Expense, error) {
	var (
		e         models.Expense
		amountStr string
		spentStr  string
	)
	if err := scan(&e.Id, &e.Category, &e.Note, &amountStr, &spentStr); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored amount %q: %w", amountStr, err)
	}
	e.Amount = amount

	spentAt, err := time.Parse(time.RFC3339, spentStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored timestamp %q: %w", spentStr, err)
	}
	e.SpentAt = spentAt

	return &e, nil
}
