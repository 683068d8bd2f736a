package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
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

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"db_path":                "/data/agent.db",
		"scan_interval":          "10m",
		"notify_once_per_offset": true,
	})

	t.Run("loads from flags", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-config", pathFlag}))

		assert.Equal(t, "/data/agent.db", cfg.DBPath)
		assert.Equal(t, 10*time.Minute, cfg.ScanInterval)
		assert.True(t, cfg.NotifyOncePerOffset)
		assert.Equal(t, "exports", cfg.ExportDir, "absent keys keep their value")
	})

	t.Run("integer nanoseconds", func(t *testing.T) {
		p := writeTempJSON(t, dir, "ns.json", map[string]any{"scan_interval": int64(time.Second)})
		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-c", p}))
		assert.Equal(t, time.Second, cfg.ScanInterval)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{DBPath: "keep.db", ScanInterval: 42 * time.Second}
		require.NoError(t, parseJson(cfg, nil))

		assert.Equal(t, "keep.db", cfg.DBPath)
		assert.Equal(t, 42*time.Second, cfg.ScanInterval)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJson(&Config{}, []string{"-config", bad}))
	})

	t.Run("missing file → error", func(t *testing.T) {
		require.Error(t, parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}))
	})
}
