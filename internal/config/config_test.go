package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: "prod"
http_server:
  address: "0.0.0.0:9000"
backend:
  base_url: "https://banner.example.com"
  request_timeout: 3s
storage: "postgres"
postgres_server:
  host: "db"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "0.0.0.0:9000", cfg.Address)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "https://banner.example.com", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Second, cfg.PollInterval)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "db", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
}

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("BANNER_BACKEND_URL", "http://backend:1234")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "localhost:8085", cfg.Address)
	assert.Equal(t, "http://backend:1234", cfg.BaseURL)
	assert.Zero(t, cfg.RequestTimeout)
	assert.Equal(t, StorageMemory, cfg.Storage)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
