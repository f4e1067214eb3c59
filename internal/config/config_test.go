package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientDefaults(t *testing.T) {
	cfg, err := LoadClient()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "statsync-client.db", cfg.DBPath)
	assert.Equal(t, "local", cfg.OwnerID)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadClientFromEnv(t *testing.T) {
	t.Setenv("STATSYNC_SERVER_URL", "https://stats.example.com")
	t.Setenv("STATSYNC_OWNER_ID", "coach-1")
	t.Setenv("STATSYNC_LOG_LEVEL", "DEBUG")

	cfg, err := LoadClient()
	require.NoError(t, err)

	assert.Equal(t, "https://stats.example.com", cfg.ServerURL)
	assert.Equal(t, "coach-1", cfg.OwnerID)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadServerFromEnv(t *testing.T) {
	t.Setenv("STATSYNC_HTTP_ADDR", ":9090")
	t.Setenv("STATSYNC_DB_PATH", "/var/lib/statsync/server.db")

	cfg, err := LoadServer()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "/var/lib/statsync/server.db", cfg.DBPath)
}
