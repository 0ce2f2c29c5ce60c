// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/provenart/go-art-registry/internal/codec"
	"github.com/provenart/go-art-registry/internal/config"
	"github.com/provenart/go-art-registry/internal/ledger"
	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/registry"
	"github.com/provenart/go-art-registry/internal/store"
	"github.com/provenart/go-art-registry/internal/tui"
	"github.com/provenart/go-art-registry/internal/workers"
)

// App is the gallery client runtime: registry, background refresh, and TUI
// wired into one process lifecycle.
type App struct {
	cfg      *config.ClientConfig
	registry *registry.Registry
	ledger   ledger.Ledger
	job      *registry.RefreshJob
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	remote, err := ledger.NewHTTPLedger(cfg.Ledger, log)
	if err != nil {
		return nil, fmt.Errorf("create ledger adapter: %w", err)
	}

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.Cache, log)
	if err != nil {
		return nil, fmt.Errorf("open local snapshot database: %w", err)
	}

	snapshots, err := store.NewSnapshotRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("create snapshot repository: %w", err)
	}

	reg := registry.NewRegistry(remote, store.NewCache(), snapshots, newCodec(cfg.App), log)

	ui, err := tui.New(reg, cfg.App.Identity, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		cfg:      cfg,
		registry: reg,
		ledger:   remote,
		job:      registry.NewRefreshJob(reg),
		tui:      ui,
		logger:   log,
	}, nil
}

func newCodec(cfg config.ClientApp) codec.Codec {
	if cfg.Codec == config.CodecSealed {
		return codec.NewSealedCodec(cfg.SealPassphrase)
	}
	return codec.NewBase64Codec()
}

// Run starts the client and blocks until the user quits the gallery.
//
// When the gateway is unreachable at startup the client stays usable in
// offline read-only mode: the cache is warmed from the local snapshot and
// the background refresh keeps probing until the gateway returns.
func (a *App) Run() error {
	ctx := context.Background()

	if a.ledger.IsAvailable(ctx) {
		if err := a.ledger.Authorize(ctx, a.cfg.App.Identity); err != nil {
			return fmt.Errorf("authorize with ledger gateway: %w", err)
		}
	} else {
		a.logger.Warn().Msg("ledger gateway unreachable, starting in offline mode")
		if err := a.registry.WarmStart(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("warm start from local snapshot failed")
		}
	}

	workers.NewWorkers(a.refreshWorker()).Run()
	defer a.job.Stop()

	return a.tui.Run(ctx)
}

// refreshWorker adapts the refresh job to the workers contract.
func (a *App) refreshWorker() workers.Worker {
	return workerFunc(func() {
		a.job.Start(context.Background(), a.cfg.Workers.RefreshInterval)
	})
}

type workerFunc func()

func (f workerFunc) Run() { f() }
