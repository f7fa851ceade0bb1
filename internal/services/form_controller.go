package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"dbforge/internal/generator"
	"dbforge/internal/models"
	"dbforge/internal/platform"
	"dbforge/internal/utils"
)

// GenerateResult describes a finished generate action.
type GenerateResult struct {
	Config *models.GeneratorConfig `json:"config"`
	Report *generator.Report       `json:"report"`
	// Changed lists git-visible changes under the generated packages.
	Changed []string `json:"changed"`
	Saved   bool     `json:"saved"`
	Opened  bool     `json:"opened"`
}

// FormController owns the generator form: validation, the generate action,
// and settings restore and reset.
type FormController struct {
	generator generator.Generator
	settings  SettingsStore
	opener    platform.Opener
	alerts    Alerter
	log       logger.Logger

	runs GenerationRunService
	git  *GitService

	currentUser func() string
}

func NewFormController(gen generator.Generator, settings SettingsStore, opener platform.Opener, alerts Alerter, log logger.Logger) *FormController {
	return &FormController{
		generator:   gen,
		settings:    settings,
		opener:      opener,
		alerts:      alerts,
		log:         log,
		currentUser: CurrentUserName,
	}
}

// UseHistory records successful runs in runs.
func (c *FormController) UseHistory(runs GenerationRunService) {
	c.runs = runs
}

// UseGit reports changed files after a run when the target is a git worktree.
func (c *FormController) UseGit(git *GitService) {
	c.git = git
}

// Defaults is the form shown when nothing was saved yet.
func (c *FormController) Defaults() FormFields {
	return FormFields{AuthorName: c.currentUser()}
}

// Restore loads the saved settings. It returns nil, nil when there are none.
func (c *FormController) Restore() (*FormFields, error) {
	cfg, err := c.settings.Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, nil
	}
	fields := FieldsFromConfig(*cfg)
	return &fields, nil
}

// Reset clears every field. The settings file is left alone.
func (c *FormController) Reset() FormFields {
	return FormFields{}
}

// TablesBlurred handles the tables input losing focus: domains are derived
// only while the domains field is blank.
func (c *FormController) TablesBlurred(tables, domains string) string {
	if strings.TrimSpace(domains) != "" {
		return domains
	}
	return DeriveDomains(tables)
}

// Generate validates fields, runs the generator on the calling goroutine,
// then saves the settings and opens the target directory. Validation and
// generator failures stop the action before anything is written; later steps
// fail independently.
func (c *FormController) Generate(ctx context.Context, fields FormFields, progress generator.Progress) (*GenerateResult, error) {
	if strings.TrimSpace(fields.Tables) != "" {
		fields.Domains = c.TablesBlurred(fields.Tables, fields.Domains)
	}

	cfg, err := Validate(fields)
	if err != nil {
		c.alert(AlertWarning, err.Error())
		return nil, err
	}

	report, err := c.generator.Generate(ctx, *cfg, progress)
	if err != nil {
		c.logError(fmt.Sprintf("generate: %v", err))
		c.alert(AlertError, err.Error())
		return nil, err
	}

	result := &GenerateResult{Config: cfg, Report: report}

	if err := c.settings.Save(*cfg); err != nil {
		c.logError(fmt.Sprintf("save settings: %v", err))
		c.alert(AlertError, err.Error())
	} else {
		result.Saved = true
	}

	if err := c.OpenOutput(cfg.TargetProjectPath); err == nil {
		result.Opened = true
	}

	if c.runs != nil {
		if _, err := c.runs.Record(ctx, *cfg, report.FileCount()); err != nil {
			c.logWarning(fmt.Sprintf("record generation run: %v", err))
		}
	}

	if c.git != nil {
		changed, err := c.git.ChangedFiles(c.packageDirs(*cfg)...)
		if err != nil {
			c.logWarning(fmt.Sprintf("git status: %v", err))
		}
		result.Changed = changed
	}

	return result, nil
}

// OpenOutput reveals dir in the file browser. dir must be an existing
// directory; otherwise the user is told and the opener is not called.
func (c *FormController) OpenOutput(dir string) error {
	if strings.TrimSpace(dir) == "" || !utils.DirectoryExists(dir) {
		msg := "output directory not found: " + dir
		c.alert(AlertError, msg)
		return errors.New(msg)
	}
	if err := c.opener.OpenDirectory(dir); err != nil {
		c.logError(fmt.Sprintf("open directory: %v", err))
		c.alert(AlertError, err.Error())
		return err
	}
	return nil
}

func (c *FormController) packageDirs(cfg models.GeneratorConfig) []string {
	var dirs []string
	for _, pkg := range []string{cfg.EntityPackageName, cfg.ServicePackageName} {
		rel, err := generator.NormalizePackagePath(pkg)
		if err != nil {
			continue
		}
		dirs = append(dirs, filepath.Join(cfg.TargetProjectPath, filepath.FromSlash(rel)))
	}
	return dirs
}

func (c *FormController) alert(level AlertLevel, message string) {
	if c.alerts != nil {
		c.alerts.Alert(level, message)
	}
}

func (c *FormController) logError(message string) {
	if c.log != nil {
		c.log.Error(message)
	}
}

func (c *FormController) logWarning(message string) {
	if c.log != nil {
		c.log.Warning(message)
	}
}

// CurrentUserName is the login name of the OS user, without a Windows domain.
func CurrentUserName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		name := u.Username
		if i := strings.LastIndex(name, `\`); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return os.Getenv("USERNAME")
}
