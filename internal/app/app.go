// Package app wires the long-lived dependencies of the API: logger, data
// catalog, file storage, metrics and the digest scheduler. They are created
// once in New and released in Close.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inmogestor-backend/internal/config"
	"inmogestor-backend/internal/cron"
	"inmogestor-backend/internal/database"
	"inmogestor-backend/internal/logger"
	"inmogestor-backend/internal/metrics"
	"inmogestor-backend/internal/settings"
	"inmogestor-backend/internal/storage"
	"inmogestor-backend/internal/store"
)

type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	DB       database.Service // nil when serving fixtures
	Catalog  *store.Catalog
	Files    storage.Store
	Metrics  *metrics.Metrics
	Settings settings.Settings
	Digest   *cron.Notifier
}

// New builds every dependency. On error, whatever was already created is
// released.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := logger.New(logger.Options{
		Level:       cfg.Log.Level,
		Environment: cfg.Env,
		ServiceName: cfg.Log.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &App{Config: cfg, Logger: log, Metrics: metrics.New("inmogestor")}

	var src store.Source = store.FixtureSource{}
	if cfg.DB.Enabled() {
		db, err := database.New(ctx, &cfg.DB)
		if err != nil {
			a.Close(ctx)
			return nil, fmt.Errorf("connect database: %w", err)
		}
		a.DB = db
		src = store.NewPostgresSource(db)
	}

	if a.Catalog, err = store.Load(ctx, src); err != nil {
		a.Close(ctx)
		return nil, err
	}
	log.Info("catalog loaded",
		zap.String("source", a.Catalog.Source()),
		zap.Int("tenants", len(a.Catalog.Tenants())),
		zap.Int("payments", len(a.Catalog.Payments())),
	)

	if a.Files, err = storage.New(ctx, cfg); err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("init file storage: %w", err)
	}

	if a.Settings, err = settings.LoadFile(cfg.Catalog.SettingsFile); err != nil {
		a.Close(ctx)
		return nil, err
	}

	a.Digest = cron.NewNotifier(a.Catalog, cfg.Digest, log, a.Metrics)
	return a, nil
}

// Start launches background jobs.
func (a *App) Start() error {
	return a.Digest.Start()
}

// Close stops background jobs and releases connections.
func (a *App) Close(ctx context.Context) {
	if a.Digest != nil {
		a.Digest.Stop(ctx)
	}
	if a.DB != nil {
		a.DB.Close()
	}
	_ = a.Logger.Sync()
}
