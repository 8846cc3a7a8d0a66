package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "classicmodels/internal/shared/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite
  path: ":memory:"
`)
		cfg, err := LoadFile(path, "")
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, ":memory:", cfg.Database.GetDSN())
		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, "goose", cfg.Migration.Strategy)
		assert.Same(t, cfg, Get())
	})

	t.Run("env parameter overrides server mode", func(t *testing.T) {
		path := writeConfig(t, "server:\n  mode: debug\n")
		cfg, err := LoadFile(path, "release")
		require.NoError(t, err)
		assert.Equal(t, "release", cfg.Server.Mode)
	})

	t.Run("environment variables override file", func(t *testing.T) {
		t.Setenv("CLASSICMODELS_DATABASE_HOST", "db.internal")
		path := writeConfig(t, "database:\n  host: localhost\n")
		cfg, err := LoadFile(path, "")
		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Database.Host)
	})

	t.Run("unknown driver rejected", func(t *testing.T) {
		path := writeConfig(t, "database:\n  driver: oracle\n")
		_, err := LoadFile(path, "")
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("mysql dsn", func(t *testing.T) {
		path := writeConfig(t, `
database:
  username: app
  password: secret
  host: db
  port: 3307
  database: classicmodels
`)
		cfg, err := LoadFile(path, "")
		require.NoError(t, err)
		assert.Equal(t,
			"app:secret@tcp(db:3307)/classicmodels?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.Database.GetDSN())
	})
}
