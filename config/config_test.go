package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "contactbook", cfg.App.Name)
	assert.Equal(t, "system", cfg.App.DefaultActor)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 3, cfg.Database.Retry.MaxAttempts)
	assert.Equal(t, 12*time.Hour, cfg.CORS.MaxAge)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.UsesSQL())
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  env: production
database:
  driver: postgres
  dsn: postgres://contactbook@localhost/contactbook
server:
  port: "9090"
`), 0o600))
	t.Setenv("CONTACTBOOK_SERVER_PORT", "9191")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://contactbook@localhost/contactbook", cfg.Database.DSN)
	assert.Equal(t, "9191", cfg.Server.Port)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Driver: "oracle"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestMemoryDriverDoesNotUseSQL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "memory"}}
	assert.False(t, cfg.UsesSQL())
}
