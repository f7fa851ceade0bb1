package generator

import (
	"context"
	"fmt"
	"go/token"
	"log"
	"os"
	"time"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"gorm.io/gen"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dbforge/internal/models"
)

// GormGenerator emits entity structs and query code with gorm/gen, then a
// thin service wrapper per table.
type GormGenerator struct {
	log  wailslogger.Logger
	open func(gorm.Dialector, ...gorm.Option) (*gorm.DB, error)
}

func NewGormGenerator(log wailslogger.Logger) *GormGenerator {
	return &GormGenerator{log: log, open: gorm.Open}
}

func (g *GormGenerator) Generate(ctx context.Context, cfg models.GeneratorConfig, progress Progress) (*Report, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if len(cfg.Tables) == 0 {
		return nil, newError(ErrInvalidConfig, "no tables given")
	}
	if len(cfg.Tables) != len(cfg.Domains) {
		return nil, newError(ErrInvalidConfig, "%d tables but %d domains", len(cfg.Tables), len(cfg.Domains))
	}
	for _, d := range cfg.Domains {
		if !token.IsIdentifier(d) || !token.IsExported(d) {
			return nil, newError(ErrInvalidConfig, "domain %q is not an exported Go identifier", d)
		}
	}

	source, err := ParseSource(cfg.ConnectionURL, cfg.Username, cfg.Password)
	if err != nil {
		return nil, err
	}
	layout, err := ResolveLayout(cfg)
	if err != nil {
		return nil, err
	}

	progress.report(fmt.Sprintf("connecting to %s database", source.Driver))
	db, err := g.connect(ctx, source)
	if err != nil {
		return nil, err
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	for _, table := range cfg.Tables {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}
		ok := db.WithContext(ctx).Migrator().HasTable(table)
		if !ok {
			return nil, newError(ErrDataAccess, "table %q not found", table)
		}
	}

	// Whole seconds, since some filesystems keep coarse modification times.
	started := time.Now().Truncate(time.Second)
	if err := g.runGen(ctx, db, layout, cfg, progress); err != nil {
		return nil, err
	}

	progress.report("writing service files")
	pairs := make([]serviceData, 0, len(cfg.Tables))
	for _, m := range cfg.Pairs() {
		pairs = append(pairs, serviceData{Table: m.Table, Domain: m.Domain})
	}
	services, skipped, err := writeServices(layout, cfg.AuthorName, pairs)
	if err != nil {
		return nil, err
	}

	report := &Report{ServiceFiles: services, Skipped: skipped}
	seen := map[string]bool{}
	if report.EntityFiles, err = generatedFiles(layout, layout.EntityDir, started, seen); err != nil {
		return nil, err
	}
	if report.QueryFiles, err = generatedFiles(layout, layout.ServiceDir, started, seen); err != nil {
		return nil, err
	}
	progress.report(fmt.Sprintf("generated %d files", report.FileCount()))
	return report, nil
}

func (g *GormGenerator) connect(ctx context.Context, source Source) (*gorm.DB, error) {
	db, err := g.open(source.Dialector(), &gorm.Config{Logger: g.gormLogger()})
	if err != nil {
		return nil, wrap(ErrDataAccess, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, wrap(ErrDataAccess, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		if ctx.Err() != nil {
			return nil, wrap(ErrInterrupted, ctx.Err())
		}
		return nil, wrap(ErrDataAccess, err)
	}
	return db, nil
}

// runGen drives gorm/gen. gen reports failures by panicking, so the panic is
// recovered and classified here.
func (g *GormGenerator) runGen(ctx context.Context, db *gorm.DB, l *Layout, cfg models.GeneratorConfig, progress Progress) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newError(ErrDataAccess, "gorm/gen: %v", r)
		}
	}()

	if mkErr := os.MkdirAll(l.EntityDir, 0o755); mkErr != nil {
		return wrap(ErrIO, mkErr)
	}

	generator := gen.NewGenerator(gen.Config{
		OutPath:           l.ServiceDir,
		ModelPkgPath:      l.EntityDir,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	generator.UseDB(db)

	metas := make([]interface{}, 0, len(cfg.Tables))
	for _, m := range cfg.Pairs() {
		if ctxErr := checkContext(ctx); ctxErr != nil {
			return ctxErr
		}
		progress.report(fmt.Sprintf("reading table %s as %s", m.Table, m.Domain))
		metas = append(metas, generator.GenerateModelAs(m.Table, m.Domain))
	}
	generator.ApplyBasic(metas...)

	progress.report("writing entity and query files")
	generator.Execute()
	return nil
}

func (g *GormGenerator) gormLogger() gormlogger.Interface {
	if g.log == nil {
		return gormlogger.Discard
	}
	return gormlogger.New(
		log.New(loggerWriter{log: g.log}, "", 0),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// loggerWriter satisfies io.Writer for the gorm logger and forwards to the app logger.
type loggerWriter struct {
	log wailslogger.Logger
}

func (w loggerWriter) Write(p []byte) (int, error) {
	w.log.Info(string(p))
	return len(p), nil
}
