package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
driver = "sqlite"
path = "club.db"

[logs]
level = "debug"

[club]
open_time = "07:00"
close_time = "23:00"
staff_ids = [1, 2]

[cache]
enabled = true
addr = "localhost:6379"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "07:00", cfg.Club.OpenTime)
	assert.Equal(t, []int64{1, 2}, cfg.Club.StaffIDs)
	assert.Equal(t, 300, cfg.Cache.TTL)
	assert.Contains(t, cfg.Database.DSN(), "file:club.db")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("CLUB_SERVER_HTTP_PORT", "7070")
	t.Setenv("CLUB_LOGS_LEVEL", "warn")
	t.Setenv("CLUB_CLUB_STAFF_IDS", "5,6")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, "warn", cfg.Logs.Level)
	assert.Equal(t, []int64{5, 6}, cfg.Club.StaffIDs)
}

func TestLoad_ValidationErrors(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
driver = "mysql"

[club]
open_time = "22:00"
close_time = "08:00"
staff_ids = [0]
`))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "database.driver")
	assert.Contains(t, err.Error(), "club.open_time")
	assert.Contains(t, err.Error(), "club.staff_ids")
}

func TestDatabaseConfig_PostgresDSN(t *testing.T) {
	d := DatabaseConfig{Driver: DriverPostgres, Host: "db", Port: 5432, User: "u", Password: "p", DBName: "club", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=club sslmode=disable", d.DSN())
}
