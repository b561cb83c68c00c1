// Package schema хранит DDL базы данных для PostgreSQL и SQLite.
package schema

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/pkg/dbmetrics"
)

//go:embed postgres.sql
var postgresDDL string

//go:embed sqlite.sql
var sqliteDDL string

// DDL возвращает схему для драйвера ("postgres" или "sqlite")
func DDL(driver string) (string, error) {
	switch driver {
	case "postgres":
		return postgresDDL, nil
	case "sqlite":
		return sqliteDDL, nil
	default:
		return "", fmt.Errorf("schema: unsupported driver %q", driver)
	}
}

// Migrate применяет схему. Все выражения идемпотентны (IF NOT EXISTS)
func Migrate(ctx context.Context, db dbmetrics.DBExecutor, driver string) error {
	ddl, err := DDL(driver)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("schema: apply %s ddl: %w", driver, err)
	}
	return nil
}
