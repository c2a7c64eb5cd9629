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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()

	t.Run("loads every key", func(t *testing.T) {
		path := writeTempJSON(t, dir, "full.json", map[string]any{
			"endpoint_addr_http":   ":6000",
			"database_dsn":         "postgresql://json/db",
			"bcrypt_cost":          11,
			"cors_allowed_origins": "http://a.test",
			"gin_mode":             "debug",
			"log_level":            "error",
			"shutdown_timeout":     "20s",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, ":6000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgresql://json/db", cfg.DatabaseDSN)
		assert.Equal(t, 11, cfg.BcryptCost)
		assert.Equal(t, "http://a.test", cfg.CORSAllowedOrigins)
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, 20*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		path := writeTempJSON(t, dir, "partial.json", map[string]any{
			"database_dsn": "postgresql://json/db",
		})
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "postgresql://json/db", cfg.DatabaseDSN)
		assert.Equal(t, ":5000", cfg.EndpointAddrHTTP)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrHTTP: "defaults:1234"}
		require.NoError(t, parseJson(cfg))
		assert.Equal(t, "defaults:1234", cfg.EndpointAddrHTTP)
	})

	t.Run("missing file", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Error(t, parseJson(&Config{}))
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-c", bad}

		require.Error(t, parseJson(&Config{}))
	})
}
