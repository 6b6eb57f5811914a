package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// setArgs replaces os.Args for the duration of the test. The config loader
// reads os.Args directly, the way the real binary does.
func setArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"forumapp"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "forum.db", cfg.DatabasePath)
	require.False(t, cfg.Debug)
}

func TestParseEnv_OverlaysValues(t *testing.T) {
	t.Setenv("FORUM_BASE_URL", "http://example.com:9000")
	t.Setenv("FORUM_TIMEOUT_SECONDS", "30")
	t.Setenv("FORUM_DB_PATH", "/tmp/forum-test.db")
	t.Setenv("FORUM_DEBUG", "true")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "http://example.com:9000", cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/forum-test.db", cfg.DatabasePath)
	require.True(t, cfg.Debug)
}

func TestParseEnv_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("FORUM_TIMEOUT_SECONDS", "soon")
	t.Setenv("FORUM_DEBUG", "maybe")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.False(t, cfg.Debug)
}

func TestParseJson_PartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url": "http://json.example", "debug": true}`), 0o600))
	setArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://json.example", cfg.BaseURL)
	require.True(t, cfg.Debug)
	// Fields the file omits keep their previous values.
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "forum.db", cfg.DatabasePath)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	setArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	setArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}

func TestParseFlags_OverlaysValues(t *testing.T) {
	setArgs(t, "-a", "http://flags.example", "-t", "45", "-d", "alt.db", "-v")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "http://flags.example", cfg.BaseURL)
	require.Equal(t, 45*time.Second, cfg.RequestTimeout)
	require.Equal(t, "alt.db", cfg.DatabasePath)
	require.True(t, cfg.Debug)
}

func TestLoadConfig_FlagsWinOverEnv(t *testing.T) {
	t.Setenv("FORUM_BASE_URL", "http://env.example")
	t.Setenv("FORUM_TIMEOUT_SECONDS", "20")
	setArgs(t, "-a", "http://flags.example")

	cfg := LoadConfig()

	require.Equal(t, "http://flags.example", cfg.BaseURL)
	require.Equal(t, 20*time.Second, cfg.RequestTimeout)
}
