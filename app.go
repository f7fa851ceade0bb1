package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"dbforge/internal/crashlog"
	"dbforge/internal/events"
	"dbforge/internal/models"
	"dbforge/internal/services"
)

var errGenerateRunning = errors.New("a generation is already running")

// App struct
type App struct {
	ctx      context.Context
	form     *services.FormController
	alerts   services.Alerter
	runs     services.GenerationRunService
	boundary *crashlog.Boundary
	dbClose  func() error

	genMu      sync.Mutex
	genRunning bool
	genCancel  context.CancelFunc
}

// NewApp creates a new App application struct
func NewApp(svc *services.AppServices, boundary *crashlog.Boundary) *App {
	return newApp(svc, boundary, nil)
}

// newApp uses alerts when given, native dialogs otherwise.
func newApp(svc *services.AppServices, boundary *crashlog.Boundary, alerts services.Alerter) *App {
	a := &App{runs: svc.Runs, boundary: boundary}
	if alerts == nil {
		alerts = dialogAlerter{app: a}
	}
	a.alerts = alerts
	a.form = svc.Form(alerts)
	return a
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()
	a.boundary.SetAlert(func(message string) {
		a.alerts.Alert(services.AlertError, message)
	})
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	a.CancelGenerate()

	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// LoadForm returns the saved form, or defaults when nothing was saved.
func (a *App) LoadForm() services.FormFields {
	defer a.boundary.Recover()

	fields, err := a.form.Restore()
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to restore settings: %v", err))
		a.alerts.Alert(services.AlertWarning, err.Error())
		return a.form.Defaults()
	}
	if fields == nil {
		return a.form.Defaults()
	}
	return *fields
}

// TablesBlurred returns the domains to show after the tables input loses focus.
func (a *App) TablesBlurred(tables, domains string) string {
	defer a.boundary.Recover()
	return a.form.TablesBlurred(tables, domains)
}

// Reset returns an empty form.
func (a *App) Reset() services.FormFields {
	return a.form.Reset()
}

// Generate starts a generation in the background. Progress and the outcome
// arrive as events:generate:* events; a second call while one is running is
// refused. The running flag is cleared before the outcome event is sent.
func (a *App) Generate(fields services.FormFields) error {
	defer a.boundary.Recover()

	a.genMu.Lock()
	if a.genRunning {
		a.genMu.Unlock()
		return errGenerateRunning
	}
	a.genRunning = true
	ctx, cancel := context.WithCancel(a.ctx)
	a.genCancel = cancel
	a.genMu.Unlock()

	events.Emit(a.ctx, events.GenerateStarted, events.NewInfo("generation started"))

	finish := sync.OnceFunc(func() {
		cancel()
		a.genMu.Lock()
		a.genRunning = false
		a.genCancel = nil
		a.genMu.Unlock()
	})

	a.boundary.Go(func() {
		defer finish()

		progress := func(stage string) {
			events.Emit(a.ctx, events.GenerateProgress, events.NewInfo(stage))
		}
		result, err := a.form.Generate(ctx, fields, progress)
		finish()
		if err != nil {
			events.Emit(a.ctx, events.GenerateFailed, events.NewError(err.Error()))
			return
		}

		done := events.NewSuccess(fmt.Sprintf("generated %d files", result.Report.FileCount())).
			WithMetadata("files", strconv.Itoa(result.Report.FileCount())).
			WithMetadata("changed", strconv.Itoa(len(result.Changed)))
		events.Emit(a.ctx, events.GenerateDone, done)
	})
	return nil
}

// CancelGenerate stops the running generation, if any.
func (a *App) CancelGenerate() {
	a.genMu.Lock()
	cancel := a.genCancel
	running := a.genRunning
	a.genMu.Unlock()
	if running && cancel != nil {
		cancel()
	}
}

// SelectDirectory opens a native directory picker dialog
func (a *App) SelectDirectory() (string, error) {
	defer a.boundary.Recover()

	dir, err := runtime.OpenDirectoryDialog(a.ctx, runtime.OpenDialogOptions{
		Title:                "Select Target Project",
		CanCreateDirectories: true,
	})
	if err != nil {
		return "", err
	}
	return dir, nil
}

// RecentRuns returns the latest generation runs, newest first.
func (a *App) RecentRuns(limit int) ([]models.GenerationRun, error) {
	defer a.boundary.Recover()

	if a.runs == nil {
		return nil, fmt.Errorf("generation history not available")
	}
	return a.runs.Recent(a.ctx, limit)
}

// dialogAlerter shows alerts as native message dialogs.
type dialogAlerter struct {
	app *App
}

func (d dialogAlerter) Alert(level services.AlertLevel, message string) {
	ctx := d.app.ctx
	if ctx == nil {
		println("Tip:", message)
		return
	}

	dialogType := runtime.InfoDialog
	switch level {
	case services.AlertWarning:
		dialogType = runtime.WarningDialog
	case services.AlertError:
		dialogType = runtime.ErrorDialog
	}
	if _, err := runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
		Type:    dialogType,
		Title:   "Tip",
		Message: message,
	}); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to show dialog: %v", err))
	}
}
