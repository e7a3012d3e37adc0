package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfigPath, "DREAMBIG_LOG_LEVEL", "DREAMBIG_LOG_FORMAT", "DREAMBIG_WATCH_DEBOUNCE_MS"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dreambig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 300*time.Millisecond, cfg.Watch.Debounce())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "log:\n  level: debug\nwatch:\n  debounce_ms: 50\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "log:\n  level: debug\n  format: console\n")
	t.Setenv("DREAMBIG_LOG_LEVEL", "warn")
	t.Setenv("DREAMBIG_WATCH_DEBOUNCE_MS", "1000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 1000, cfg.Watch.DebounceMs)
}

func TestLoad_EnvPath(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, writeConfig(t, "log:\n  format: console\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_IgnoresBadDebounceEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DREAMBIG_WATCH_DEBOUNCE_MS", "soon")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Watch.DebounceMs)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeConfig(t, "log: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = Load(writeConfig(t, "log:\n  level: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	_, err = Load(writeConfig(t, "log:\n  format: xml\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")

	_, err = Load(writeConfig(t, "watch:\n  debounce_ms: -5\n"))
	require.Error(t, err)
}
