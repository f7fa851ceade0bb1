// Package config resolves file locations and service names for dbforge.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dbforge/internal/crashlog"
	"dbforge/internal/database"
	"dbforge/internal/services"
	"dbforge/internal/utils"
)

// Config holds paths and names resolved at startup.
type Config struct {
	WorkDir        string
	SettingsPath   string
	CrashLogPath   string
	HistoryDBPath  string
	KeyringService string
}

// Load reads an optional .env in the working directory, then the DBFORGE_*
// variables. Relative paths are resolved against the working directory.
func Load() (Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	return LoadFrom(wd)
}

func LoadFrom(workDir string) (Config, error) {
	if err := utils.LoadEnv(workDir); err != nil {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Config{
		WorkDir:        workDir,
		SettingsPath:   envOr("DBFORGE_SETTINGS_FILE", services.DefaultSettingsFile),
		CrashLogPath:   envOr("DBFORGE_CRASH_LOG", crashlog.DefaultFile),
		HistoryDBPath:  envOr("DBFORGE_HISTORY_DB", database.GetDefaultDBPath()),
		KeyringService: envOr("DBFORGE_KEYRING_SERVICE", services.DefaultKeyringService),
	}
	cfg.SettingsPath = resolve(workDir, cfg.SettingsPath)
	cfg.CrashLogPath = resolve(workDir, cfg.CrashLogPath)
	cfg.HistoryDBPath = resolve(workDir, cfg.HistoryDBPath)
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
