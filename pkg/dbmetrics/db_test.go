package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-ClubSpacesService/pkg/metrics"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func TestGetExecutor_PrefersTransactionFromContext(t *testing.T) {
	db := Wrap(openDB(t), nil, "test")
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, db))
}

func TestDB_RecordsQueryMetrics(t *testing.T) {
	m := metrics.New("test", prometheus.NewRegistry())
	db := Wrap(openDB(t), m, "test")
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO items (name) VALUES ($1)`, "court")
	require.NoError(t, err)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	_, err = tx.ExecContext(ctx, `UPDATE items SET name = $1`, "hall")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	var name string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT name FROM items`).Scan(&name))
	assert.Equal(t, "hall", name)

	assert.Equal(t, 3, testutil.CollectAndCount(m.DBQueryDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBTransactionsTotal.WithLabelValues("commit")))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("  SELECT id FROM spaces"))
	assert.Equal(t, "unknown", operation(""))
}
