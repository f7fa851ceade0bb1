// Package cli is the headless front end: the same form, driven by flags.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dbforge/internal/config"
	"dbforge/internal/database"
	"dbforge/internal/generator"
	"dbforge/internal/platform"
	"dbforge/internal/services"
)

// ErrReported marks a failure that was already shown to the user.
var ErrReported = errors.New("reported")

// Runtime carries what every command needs.
type Runtime struct {
	Out    io.Writer
	Err    io.Writer
	Config config.Config
	// Credentials may be nil; passwords are then neither saved nor restored.
	Credentials services.CredentialStore

	// Generator and Opener replace the defaults when set.
	Generator generator.Generator
	Opener    platform.Opener

	keyringErr error
	verbose    bool
}

// DefaultRuntime loads the configuration from the working directory and
// opens the OS keyring.
func DefaultRuntime() (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	rt := &Runtime{Out: os.Stdout, Err: os.Stderr, Config: cfg}
	if ring, err := services.OpenKeyring(cfg.KeyringService); err != nil {
		rt.keyringErr = err
	} else {
		rt.Credentials = services.NewKeyringService(ring)
	}
	return rt, nil
}

func (rt *Runtime) logger() logger.Logger {
	return &consoleLogger{w: rt.Err, verbose: rt.verbose}
}

func (rt *Runtime) alerter() services.Alerter {
	return consoleAlerter{w: rt.Err}
}

// openHistory opens the run history database. The returned close func is
// always safe to call.
func (rt *Runtime) openHistory() (*gorm.DB, func(), error) {
	db, err := database.Init(database.Config{
		Path:     rt.Config.HistoryDBPath,
		LogLevel: gormlogger.Silent,
	})
	if err != nil {
		return nil, func() {}, fmt.Errorf("open history %s: %w", rt.Config.HistoryDBPath, err)
	}
	return db, func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}, nil
}

// services wires the application services. History is best effort.
func (rt *Runtime) services() (*services.AppServices, func()) {
	log := rt.logger()
	if rt.keyringErr != nil {
		log.Debug(fmt.Sprintf("keyring unavailable: %v", rt.keyringErr))
	}

	db, closeDB, err := rt.openHistory()
	if err != nil {
		log.Warning(err.Error())
	}

	svc := services.NewAppServices(db, rt.Config.SettingsPath, rt.Credentials, log)
	if rt.Generator != nil {
		svc.Generator = rt.Generator
	}
	if rt.Opener != nil {
		svc.Opener = rt.Opener
	}
	return svc, closeDB
}

// consoleAlerter prints alerts to stderr, coloured by level.
type consoleAlerter struct {
	w io.Writer
}

func (a consoleAlerter) Alert(level services.AlertLevel, message string) {
	c := color.New(color.FgCyan)
	switch level {
	case services.AlertWarning:
		c = color.New(color.FgYellow)
	case services.AlertError:
		c = color.New(color.FgRed, color.Bold)
	}
	c.Fprintf(a.w, "%s: %s\n", level, message)
}

// consoleLogger is a wails logger.Logger for terminals. Debug and info
// lines are only shown with --verbose.
type consoleLogger struct {
	w       io.Writer
	verbose bool
}

func (l *consoleLogger) line(c *color.Color, prefix, message string) {
	c.Fprintf(l.w, "%-5s %s\n", prefix, message)
}

func (l *consoleLogger) Print(message string) { fmt.Fprintln(l.w, message) }

func (l *consoleLogger) Trace(message string) {
	if l.verbose {
		l.line(color.New(color.FgHiBlack), "TRACE", message)
	}
}

func (l *consoleLogger) Debug(message string) {
	if l.verbose {
		l.line(color.New(color.FgHiBlack), "DEBUG", message)
	}
}

func (l *consoleLogger) Info(message string) {
	if l.verbose {
		l.line(color.New(color.FgCyan), "INFO", message)
	}
}

func (l *consoleLogger) Warning(message string) {
	l.line(color.New(color.FgYellow), "WARN", message)
}

func (l *consoleLogger) Error(message string) {
	l.line(color.New(color.FgRed), "ERROR", message)
}

func (l *consoleLogger) Fatal(message string) {
	l.line(color.New(color.FgRed, color.Bold), "FATAL", message)
	os.Exit(1)
}
