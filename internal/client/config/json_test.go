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

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overlays present fields only", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_base_url":       "https://booking.example/dev",
			"online_check_interval": "10s",
			"request_timeout":       2000000000,
			"log_backend":           "zap",
		})
		os.Args = []string{"bookit", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "https://booking.example/dev", cfg.ServerBaseURL)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "zap", cfg.LogBackend)
		assert.Equal(t, "bookit.db", cfg.DatabasePath)
	})

	t.Run("no config flag leaves config alone", func(t *testing.T) {
		os.Args = []string{"bookit"}
		cfg := &Config{ServerBaseURL: "http://keep:1"}
		require.NoError(t, parseJson(cfg))
		assert.Equal(t, "http://keep:1", cfg.ServerBaseURL)
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))
		os.Args = []string{"bookit", "-c", bad}

		require.Error(t, parseJson(&Config{}))
	})

	t.Run("missing file is an error", func(t *testing.T) {
		os.Args = []string{"bookit", "-c", filepath.Join(t.TempDir(), "absent.json")}
		require.Error(t, parseJson(&Config{}))
	})
}
