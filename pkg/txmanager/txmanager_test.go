package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-ClubSpacesService/pkg/dbmetrics"
)

func setup(t *testing.T) (*dbmetrics.DB, *TransactionManager) {
	t.Helper()
	raw, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { raw.Close() })

	_, err = raw.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)

	db := dbmetrics.Wrap(raw, nil, "test")
	return db, NewTransactionManager(db, WithRetries(2, time.Millisecond))
}

func count(t *testing.T, db *dbmetrics.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	db, tm := setup(t)

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES ($1)`, "a")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count(t, db))
}

func TestDoSerializable_RollsBackOnError(t *testing.T) {
	db, tm := setup(t)
	boom := errors.New("boom")

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		if _, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES ($1)`, "a"); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, count(t, db))
}

func TestDoSerializable_NestedCallJoinsOuterTransaction(t *testing.T) {
	db, tm := setup(t)
	boom := errors.New("outer failed")

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		inner := tm.Do(ctx, func(ctx context.Context) error {
			_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES ($1)`, "inner")
			return err
		})
		require.NoError(t, inner)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, count(t, db), "inner write must roll back with the outer transaction")
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	_, tm := setup(t)
	attempts := 0

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoSerializable_GivesUpAfterRetries(t *testing.T) {
	_, tm := setup(t)
	attempts := 0

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return &pq.Error{Code: "40P01"}
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
}
