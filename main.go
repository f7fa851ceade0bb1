package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	gormlogger "gorm.io/gorm/logger"

	"dbforge/internal/config"
	"dbforge/internal/crashlog"
	"dbforge/internal/database"
	"dbforge/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}

	boundary := crashlog.NewBoundary(crashlog.FileSink{Path: cfg.CrashLogPath}, func(message string) {
		fmt.Fprintln(os.Stderr, "crash log unavailable:", message)
	})
	defer boundary.Recover()

	log := logger.NewDefaultLogger()

	db, err := database.Init(database.Config{
		Path:     cfg.HistoryDBPath,
		LogLevel: gormlogger.Warn,
	})
	if err != nil {
		// History is optional; the form still works without it.
		log.Warning(fmt.Sprintf("history database unavailable: %v", err))
	}

	var credentials services.CredentialStore
	if ring, err := services.OpenKeyring(cfg.KeyringService); err != nil {
		log.Warning(fmt.Sprintf("keyring unavailable, passwords will not be saved: %v", err))
	} else {
		credentials = services.NewKeyringService(ring)
	}

	svc := services.NewAppServices(db, cfg.SettingsPath, credentials, log)
	app := NewApp(svc, boundary)
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			app.dbClose = sqlDB.Close
		}
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:     "dbforge",
		Width:     760,
		Height:    720,
		MinWidth:  640,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "dbforge",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Logger:           log,
		LogLevel:         logger.INFO,
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
