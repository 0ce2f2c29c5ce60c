package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"identity": "0xABC",
			"codec": "sealed",
			"seal_passphrase": "hunter2",
			"token_sign_key": "sign-key",
			"token_issuer": "art-gateway",
			"token_duration": "1h",
			"version": "1.2.3"
		},
		"ledger": {"address": "localhost:8080", "request_timeout": "45s"},
		"storage": {"db": {"dsn": "postgres://ledger"}, "cache": {"path": "snap.db"}},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "30s"},
		"workers": {"refresh_interval": "90s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "0xABC", cfg.App.Identity)
	assert.Equal(t, "sealed", cfg.App.Codec)
	assert.Equal(t, "hunter2", cfg.App.SealPassphrase)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Ledger.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Ledger.RequestTimeout)
	assert.Equal(t, "postgres://ledger", cfg.Storage.DB.DSN)
	assert.Equal(t, "snap.db", cfg.Storage.Cache.Path)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 90*time.Second, cfg.Workers.RefreshInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"app": `)
	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding json configs")
}

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"2m30s"`), &d))
	assert.Equal(t, 150*time.Second, time.Duration(d))
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

func TestDuration_UnmarshalBadString(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
