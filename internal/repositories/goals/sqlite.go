// Package goals provides the persistence layer for savings goals.
package goals

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

// CreateOrUpdate upserts a goal by id. A zero deadline is stored as an empty
// string and reads back as the zero time.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, g *models.SavingsGoal) error {
	deadline := ""
	if !g.Deadline.IsZero() {
		deadline = g.Deadline.UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO goals (id, name, target, saved, deadline, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				target = excluded.target,
				saved = excluded.saved,
				deadline = excluded.deadline
	`
	_, err := r.db.ExecContext(ctx, query,
		g.Id, g.Name, g.Target.String(), g.Saved.String(), deadline, g.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert goal: %w", err)
	}
	return nil
}

// GetByID returns a single goal by id.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.SavingsGoal, error) {
	query := `SELECT id, name, target, saved, deadline, created_at FROM goals WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	g, err := scanGoal(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return g, nil
}

// GetAll lists every goal, oldest first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.SavingsGoal, error) {
	query := `SELECT id, name, target, saved, deadline, created_at FROM goals ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select goals: %w", err)
	}
	defer rows.Close()

	var result []models.SavingsGoal
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// AddContribution increases the saved amount. Saved values are decimal
// strings, so the addition happens in Go as a read-modify-write; wrap the
// call in dbx.WithTx when atomicity matters.
func (r *SQLiteRepository) AddContribution(ctx context.Context, id string, amount decimal.Decimal) error {
	g, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	newSaved := g.Saved.Add(amount)
	res, err := r.db.ExecContext(ctx, `UPDATE goals SET saved = ? WHERE id = ?`, newSaved.String(), id)
	if err != nil {
		return fmt.Errorf("failed to update goal saved amount: %w", err)
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

// DeleteByID removes a goal. It expects exactly one row to be affected.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
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

func scanGoal(scan func(dest ...any) error) (*models.SavingsGoal, error) {
	var (
		g           models.SavingsGoal
		targetStr   string
		savedStr    string
		deadlineStr string
		createdStr  string
	)
	if err := scan(&g.Id, &g.Name, &targetStr, &savedStr, &deadlineStr, &createdStr); err != nil {
		return nil, err
	}

	target, err := decimal.NewFromString(targetStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored target %q: %w", targetStr, err)
	}
	g.Target = target

	saved, err := decimal.NewFromString(savedStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored saved %q: %w", savedStr, err)
	}
	g.Saved = saved

	if deadlineStr != "" {
		deadline, err := time.Parse(time.RFC3339, deadlineStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored deadline %q: %w", deadlineStr, err)
		}
		g.Deadline = deadline
	}

	createdAt, err := time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored timestamp %q: %w", createdStr, err)
	}
	g.CreatedAt = createdAt

	return &g, nil
}
