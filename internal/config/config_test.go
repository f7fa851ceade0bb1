package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DBFORGE_SETTINGS_FILE", "")
	t.Setenv("DBFORGE_CRASH_LOG", "")
	t.Setenv("DBFORGE_KEYRING_SERVICE", "")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dbforge.config"), cfg.SettingsPath)
	assert.Equal(t, filepath.Join(dir, "crash.log"), cfg.CrashLogPath)
	assert.Equal(t, "dbforge", cfg.KeyringService)
	assert.True(t, filepath.IsAbs(cfg.HistoryDBPath))
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "history.db")
	t.Setenv("DBFORGE_SETTINGS_FILE", "custom.json")
	t.Setenv("DBFORGE_HISTORY_DB", abs)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.json"), cfg.SettingsPath)
	assert.Equal(t, abs, cfg.HistoryDBPath)
}

func TestLoadFrom_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DBFORGE_CRASH_LOG", "")
	require.NoError(t, os.Unsetenv("DBFORGE_CRASH_LOG"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DBFORGE_CRASH_LOG=logs/crash.txt\n"), 0o644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "logs", "crash.txt"), cfg.CrashLogPath)
}
