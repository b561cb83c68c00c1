// Package storagetest поднимает in-memory SQLite со схемой сервиса для тестов.
package storagetest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/schema"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/txmanager"
)

// NewDB открывает чистую in-memory базу.
// Одно соединение: все запросы внутри транзакции обязаны идти через dbmetrics.GetExecutor
func NewDB(t *testing.T) *dbmetrics.DB {
	t.Helper()

	raw, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	raw.SetMaxIdleConns(1)
	raw.SetConnMaxLifetime(0)
	t.Cleanup(func() { _ = raw.Close() })

	db := dbmetrics.Wrap(raw, nil, "test")
	require.NoError(t, schema.Migrate(context.Background(), db, "sqlite"))
	return db
}

// NewTxManager менеджер транзакций поверх тестовой базы
func NewTxManager(db *dbmetrics.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(db, txmanager.WithRetries(2, time.Millisecond))
}

// Day полночь UTC указанной даты
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// At момент времени в UTC
func At(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// InsertSpace создает площадку напрямую через SQL и возвращает её id
func InsertSpace(t *testing.T, db dbmetrics.DBExecutor, name string, reservable bool) int64 {
	t.Helper()

	now := time.Now().UTC()
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO spaces (name, capacity, cost_per_hour, is_reservable, is_available, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		name, 4, 20.0, reservable, true, "sports", now, now,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// Count количество строк в таблице по условию
func Count(t *testing.T, db dbmetrics.DBExecutor, table, where string, args ...interface{}) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), query, args...).Scan(&n))
	return n
}
