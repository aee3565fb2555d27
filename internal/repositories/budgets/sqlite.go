// Package budgets provides the persistence layer for monthly category limits.
package budgets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

// CreateOrUpdate upserts a budget. The (category, month) pair is the logical
// key; a second write for the same pair keeps the original id and replaces
// the limit.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, b *models.Budget) error {
	query := `INSERT INTO budgets (id, category, month, spend_limit)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(category, month) DO UPDATE SET spend_limit = excluded.spend_limit
	`
	_, err := r.db.ExecContext(ctx, query, b.Id, b.Category, b.Month, b.Limit.String())
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// GetByCategory returns the budget for one category within a month bucket.
func (r *SQLiteRepository) GetByCategory(ctx context.Context, category, month string) (*models.Budget, error) {
	query := `SELECT id, category, month, spend_limit FROM budgets WHERE category = ? AND month = ?`
	row := r.db.QueryRowContext(ctx, query, category, month)

	b, err := scanBudget(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return b, nil
}

// GetByMonth lists every budget in a month bucket, ordered by category.
func (r *SQLiteRepository) GetByMonth(ctx context.Context, month string) ([]models.Budget, error) {
	query := `SELECT id, category, month, spend_limit FROM budgets WHERE month = ? ORDER BY category`
	rows, err := r.db.QueryContext(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to select budgets: %w", err)
	}
	defer rows.Close()

	var result []models.Budget
	for rows.Next() {
		b, err := scanBudget(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes a budget. It expects exactly one row to be affected.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
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

func scanBudget(scan func(dest ...any) error) (*models.Budget, error) {
	var (
		b        models.Budget
		limitStr string
	)
	if err := scan(&b.Id, &b.Category, &b.Month, &limitStr); err != nil {
		return nil, err
	}
	limit, err := decimal.NewFromString(limitStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored limit %q: %w", limitStr, err)
	}
	b.Limit = limit
	return &b, nil
}
