package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_CreatesSchemaAndRepos(t *testing.T) {
	ctx := context.Background()

	db, repos, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NotNil(t, repos)
	require.NotNil(t, repos.KV)
	require.NotNil(t, repos.Expenses)
	require.NotNil(t, repos.Budgets)
	require.NotNil(t, repos.Goals)
	require.NotNil(t, repos.Trips)
	require.NotNil(t, repos.Subscriptions)

	for _, table := range []string{"kvstore", "expenses", "budgets", "goals", "trips", "subscriptions"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
		assert.Equal(t, table, name)
	}
}

func TestInitDatabase_KVRoundTripThroughMigratedSchema(t *testing.T) {
	ctx := context.Background()

	db, repos, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repos.KV.Set(ctx, "k", []byte("v")))
	v, err := repos.KV.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestInitDatabase_BadPath(t *testing.T) {
	_, _, err := InitDatabase(context.Background(), "file:/nonexistent-dir/definitely/missing.db?mode=rw")
	require.Error(t, err)
}
