package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"dbforge/internal/models"
)

// DefaultSettingsFile is the settings file name, relative to the working directory.
const DefaultSettingsFile = "dbforge.config"

// SettingsStore persists the last used configuration between launches.
type SettingsStore interface {
	Save(cfg models.GeneratorConfig) error
	// Load returns nil without error when no settings were saved yet.
	Load() (*models.GeneratorConfig, error)
}

type settingsService struct {
	path        string
	credentials CredentialStore
	log         logger.Logger
}

// NewSettingsService stores settings as JSON at path. The password goes to
// credentials; with a nil CredentialStore it is not persisted at all.
func NewSettingsService(path string, credentials CredentialStore, log logger.Logger) SettingsStore {
	return &settingsService{path: path, credentials: credentials, log: log}
}

// Save overwrites the settings file. When the credential account changed
// since the last save, the password stored under the old account is removed.
func (s *settingsService) Save(cfg models.GeneratorConfig) error {
	previous := s.previousAccount()
	account := cfg.CredentialAccount()

	if s.credentials != nil && cfg.Password != "" {
		if err := s.credentials.StorePassword(account, cfg.Password); err != nil {
			return fmt.Errorf("store password: %w", err)
		}
	}
	cfg.Password = ""

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	if previous != "" && previous != account {
		if err := s.credentials.DeletePassword(previous); err != nil {
			s.warn(fmt.Sprintf("settings: failed to remove old password: %v", err))
		}
	}
	return nil
}

func (s *settingsService) Load() (*models.GeneratorConfig, error) {
	cfg, err := s.readFile()
	if err != nil || cfg == nil {
		return nil, err
	}

	// Older files may still carry the password inline.
	if cfg.Password == "" && s.credentials != nil && cfg.Username != "" {
		password, err := s.credentials.GetPassword(cfg.CredentialAccount())
		if err != nil {
			s.warn(fmt.Sprintf("settings: password lookup failed: %v", err))
		} else {
			cfg.Password = password
		}
	}
	return cfg, nil
}

// readFile decodes the settings file without touching the credential store.
func (s *settingsService) readFile() (*models.GeneratorConfig, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var cfg models.GeneratorConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", s.path, err)
	}
	return &cfg, nil
}

// previousAccount is the credential account of the saved settings, or ""
// when there is nothing to clean up.
func (s *settingsService) previousAccount() string {
	if s.credentials == nil {
		return ""
	}
	old, err := s.readFile()
	if err != nil || old == nil || old.Username == "" {
		return ""
	}
	return old.CredentialAccount()
}

func (s *settingsService) warn(message string) {
	if s.log != nil {
		s.log.Warning(message)
	}
}
