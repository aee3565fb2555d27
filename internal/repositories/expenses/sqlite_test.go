package expenses

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshipatil0812/finance-family/internal/common"
	"github.com/sakshipatil0812/finance-family/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE expenses (
  id       TEXT PRIMARY KEY,
  category TEXT NOT NULL,
  note     TEXT NOT NULL DEFAULT '',
  amount   TEXT NOT NULL,
  spent_at TEXT NOT NULL,
  month    TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func newExpense(category string, amount int64, spentAt time.Time) *models.Expense {
	return &models.Expense{
		Id:       uuid.NewString(),
		Category: category,
		Note:     "test",
		Amount:   decimal.NewFromInt(amount),
		SpentAt:  spentAt,
	}
}

func TestCreateOrUpdate_InsertAndGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	spent := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)
	e := newExpense("groceries", 450, spent)
	require.NoError(t, r.CreateOrUpdate(ctx, e))

	got, err := r.GetByID(ctx, e.Id)
	require.NoError(t, err)
	assert.Equal(t, e.Id, got.Id)
	assert.Equal(t, "groceries", got.Category)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(450)))
	assert.True(t, got.SpentAt.Equal(spent))
}

func TestCreateOrUpdate_UpsertOverwrites(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e := newExpense("groceries", 100, time.Now().UTC())
	require.NoError(t, r.CreateOrUpdate(ctx, e))

	e.Category = "transport"
	e.Amount = decimal.NewFromInt(250)
	require.NoError(t, r.CreateOrUpdate(ctx, e))

	got, err := r.GetByID(ctx, e.Id)
	require.NoError(t, err)
	assert.Equal(t, "transport", got.Category)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(250)))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByMonth_FiltersBucket(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	aug := time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)
	sep := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, r.CreateOrUpdate(ctx, newExpense("groceries", 100, aug)))
	require.NoError(t, r.CreateOrUpdate(ctx, newExpense("transport", 50, aug.AddDate(0, 0, 3))))
	require.NoError(t, r.CreateOrUpdate(ctx, newExpense("groceries", 75, sep)))

	got, err := r.GetByMonth(ctx, "2026-08")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// newest first
	assert.True(t, got[0].SpentAt.After(got[1].SpentAt))
}

func TestTotalByCategory(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	aug := time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)

	require.NoError(t, r.CreateOrUpdate(ctx, newExpense("groceries", 100, aug)))
	require.NoError(t, r.CreateOrUpdate(ctx, newExpense("groceries", 40, aug.AddDate(0, 0, 1))))
	require.NoError(t, r.CreateOrUpdate(ctx, newExpense("transport", 60, aug)))

	totals, err := r.TotalByCategory(ctx, "2026-08")
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.True(t, totals["groceries"].Equal(decimal.NewFromInt(140)))
	assert.True(t, totals["transport"].Equal(decimal.NewFromInt(60)))
}

func TestTotalByCategory_DecimalPrecision(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	aug := time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)

	a := newExpense("misc", 0, aug)
	a.Amount = decimal.RequireFromString("0.10")
	b := newExpense("misc", 0, aug)
	b.Amount = decimal.RequireFromString("0.20")

	require.NoError(t, r.CreateOrUpdate(ctx, a))
	require.NoError(t, r.CreateOrUpdate(ctx, b))

	totals, err := r.TotalByCategory(ctx, "2026-08")
	require.NoError(t, err)
	assert.True(t, totals["misc"].Equal(decimal.RequireFromString("0.30")))
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e := newExpense("groceries", 100, time.Now().UTC())
	require.NoError(t, r.CreateOrUpdate(ctx, e))
	require.NoError(t, r.DeleteByID(ctx, e.Id))

	_, err := r.GetByID(ctx, e.Id)
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.ErrorIs(t, r.DeleteByID(ctx, e.Id), common.ErrorNotFound)
}
