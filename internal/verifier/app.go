// SPDX-License-Identifier: Apache-2.0

package verifier

import (
	"context"
	"fmt"

	"github.com/dgckit/go-dgc-verifier/internal/config"
	"github.com/dgckit/go-dgc-verifier/internal/gateway"
	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/internal/rules"
	"github.com/dgckit/go-dgc-verifier/internal/service"
	"github.com/dgckit/go-dgc-verifier/internal/store"
	"github.com/dgckit/go-dgc-verifier/internal/workers"
	"github.com/dgckit/go-dgc-verifier/models"
)

// App aggregates every component of the verifier and drives its lifecycle.
type App struct {
	cfg      *config.Config
	catalog  *rules.Catalog
	engine   *rules.Engine
	services *service.Services
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp builds the full verifier from configuration: rule catalog, local
// storage (with migrations applied), outbound gateway, rule engine, and the
// synchronization services. Nothing runs until Run is called.
func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	settings, err := rules.LoadSettings(cfg.App.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("load rule catalog: %w", err)
	}
	catalog := rules.NewCatalog(settings)

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	gw, err := gateway.NewHTTPGateway(cfg.Gateway, log)
	if err != nil {
		return nil, fmt.Errorf("create gateway: %w", err)
	}

	services := service.NewServices(storages, gw, catalog, cfg.Sync, log)

	app := &App{
		cfg:      cfg,
		catalog:  catalog,
		engine:   rules.NewEngine(catalog, storages.RevocationRepository, cfg.App.HomeCountry, log),
		services: services,
		logger:   log,
	}
	app.workers = workers.NewWorkers(workers.WorkerFunc(func(ctx context.Context) {
		services.SyncJob.Start(ctx, cfg.Sync.Interval)
	}))

	return app, nil
}

// Run implements [Verifier]. It initializes the sync controller, fires the
// first synchronization attempt, starts the periodic job, and blocks until
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.SyncController.Initialize(ctx, newStatusLogger(a.logger)); err != nil {
		return fmt.Errorf("initialize sync controller: %w", err)
	}

	a.services.SyncController.Trigger(ctx)
	a.workers.Run(ctx)

	a.logger.Info().
		Str("func", "verifier.App.Run").
		Str("version", a.cfg.App.Version).
		Msg("verifier started")

	<-ctx.Done()

	a.services.SyncJob.Stop()
	a.logger.Info().
		Str("func", "verifier.App.Run").
		Msg("verifier stopped")

	return nil
}

// Scan implements [Verifier]. When the configuration demands a completed
// first synchronization, scans are refused until the local revocation set
// matches a server version.
func (a *App) Scan(ctx context.Context, cert models.CertificateStatement, mode models.ScanMode) (models.ValidityDecision, error) {
	if a.cfg.App.RequireFirstSync && !a.services.SyncController.IsSynchronized(ctx) {
		return models.ValidityDecision{}, service.ErrSyncNotInitialized
	}

	return a.engine.Validate(ctx, cert, mode), nil
}

// ConfirmDownload records the operator's consent for a download exceeding
// the automatic size threshold and starts it.
func (a *App) ConfirmDownload(ctx context.Context) {
	a.services.SyncController.SetDownloadConfirmed(true)
	a.services.SyncController.StartDownload(ctx)
}
