package services

import (
	"github.com/wailsapp/wails/v2/pkg/logger"
	"gorm.io/gorm"

	"dbforge/internal/generator"
	"dbforge/internal/platform"
	"dbforge/internal/repositories"
)

// AppServices holds the services shared by the desktop shell and the CLI.
type AppServices struct {
	Generator generator.Generator
	Settings  SettingsStore
	Opener    platform.Opener
	Runs      GenerationRunService
	Git       *GitService

	log logger.Logger
}

// NewAppServices wires the default implementations. db may be nil, in which
// case generation runs are not recorded.
func NewAppServices(db *gorm.DB, settingsPath string, credentials CredentialStore, log logger.Logger) *AppServices {
	s := &AppServices{
		Generator: generator.NewGormGenerator(log),
		Settings:  NewSettingsService(settingsPath, credentials, log),
		Opener:    platform.NewOpener(log),
		Git:       NewGitService(),
		log:       log,
	}
	if db != nil {
		s.Runs = NewGenerationRunService(repositories.NewGenerationRunRepository(db))
	}
	return s
}

// Form builds a FormController that reports to alerts.
func (s *AppServices) Form(alerts Alerter) *FormController {
	c := NewFormController(s.Generator, s.Settings, s.Opener, alerts, s.log)
	if s.Runs != nil {
		c.UseHistory(s.Runs)
	}
	c.UseGit(s.Git)
	return c
}
