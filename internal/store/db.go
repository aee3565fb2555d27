// Package store opens the local SQLite database, applies migrations, and
// bundles the repositories the application works with.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/sakshipatil0812/finance-family/internal/migrations"
	"github.com/sakshipatil0812/finance-family/internal/repositories/budgets"
	"github.com/sakshipatil0812/finance-family/internal/repositories/expenses"
	"github.com/sakshipatil0812/finance-family/internal/repositories/goals"
	"github.com/sakshipatil0812/finance-family/internal/repositories/kvstore"
	"github.com/sakshipatil0812/finance-family/internal/repositories/subscriptions"
	"github.com/sakshipatil0812/finance-family/internal/repositories/trips"
)

// Repositories bundles every repository bound to the shared database handle.
type Repositories struct {
	KV            kvstore.Repository
	Expenses      expenses.Repository
	Budgets       budgets.Repository
	Goals         goals.Repository
	Trips         trips.Repository
	Subscriptions subscriptions.Repository
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn, runs migrations, and returns
// the handle together with the repository bundle. The caller owns the handle
// and is responsible for closing it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := &Repositories{
		KV:            kvstore.NewSQLiteRepository(db),
		Expenses:      expenses.NewSQLiteRepository(db),
		Budgets:       budgets.NewSQLiteRepository(db),
		Goals:         goals.NewSQLiteRepository(db),
		Trips:         trips.NewSQLiteRepository(db),
		Subscriptions: subscriptions.NewSQLiteRepository(db),
	}
	return db, repos, nil
}
