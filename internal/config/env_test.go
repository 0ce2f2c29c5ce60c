package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_IDENTITY", "0xABCDEF")
	t.Setenv("APP_CODEC", "base64")
	t.Setenv("LEDGER_ADDRESS", "localhost:8080")
	t.Setenv("LEDGER_REQUEST_TIMEOUT", "30s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://ledger")
	t.Setenv("STORAGE_CACHE_PATH", "/tmp/snapshot.db")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "2m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "0xABCDEF", cfg.App.Identity)
	assert.Equal(t, "base64", cfg.App.Codec)
	assert.Equal(t, "localhost:8080", cfg.Ledger.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Ledger.RequestTimeout)
	assert.Equal(t, "postgres://ledger", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/snapshot.db", cfg.Storage.Cache.Path)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseEnv_EmptyEnvironmentIsValid(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.App.Identity)
	assert.Zero(t, cfg.Ledger.RequestTimeout)
}

func TestParseEnv_BadDurationFails(t *testing.T) {
	t.Setenv("LEDGER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env configs")
}
