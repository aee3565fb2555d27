package trips

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
CREATE TABLE trips (
  id          TEXT PRIMARY KEY,
  destination TEXT NOT NULL,
  start_date  TEXT NOT NULL,
  end_date    TEXT NOT NULL,
  budget      TEXT NOT NULL,
  notes       TEXT NOT NULL DEFAULT ''
);`)
	require.NoError(t, err)
	return db
}

func newTrip(destination string, start time.Time) *models.Trip {
	return &models.Trip{
		Id:          uuid.NewString(),
		Destination: destination,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 4),
		Budget:      decimal.NewFromInt(30000),
		Notes:       "book early",
	}
}

func TestCreateOrUpdate_InsertAndGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	start := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)
	trip := newTrip("Goa", start)
	require.NoError(t, r.CreateOrUpdate(ctx, trip))

	got, err := r.GetByID(ctx, trip.Id)
	require.NoError(t, err)
	assert.Equal(t, "Goa", got.Destination)
	assert.True(t, got.StartDate.Equal(start))
	assert.True(t, got.Budget.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, 4, got.Nights())
}

func TestCreateOrUpdate_UpsertOverwrites(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	trip := newTrip("Goa", time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, r.CreateOrUpdate(ctx, trip))

	trip.Destination = "Manali"
	trip.Budget = decimal.NewFromInt(45000)
	require.NoError(t, r.CreateOrUpdate(ctx, trip))

	got, err := r.GetByID(ctx, trip.Id)
	require.NoError(t, err)
	assert.Equal(t, "Manali", got.Destination)
	assert.True(t, got.Budget.Equal(decimal.NewFromInt(45000)))
}

func TestGetAll_OrderedByStartDate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	later := newTrip("Goa", time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC))
	sooner := newTrip("Pune", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, r.CreateOrUpdate(ctx, later))
	require.NoError(t, r.CreateOrUpdate(ctx, sooner))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Pune", got[0].Destination)
	assert.Equal(t, "Goa", got[1].Destination)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	trip := newTrip("Goa", time.Now().UTC())
	require.NoError(t, r.CreateOrUpdate(ctx, trip))
	require.NoError(t, r.DeleteByID(ctx, trip.Id))

	_, err := r.GetByID(ctx, trip.Id)
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.ErrorIs(t, r.DeleteByID(ctx, trip.Id), common.ErrorNotFound)
}
