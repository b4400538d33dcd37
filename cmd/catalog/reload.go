package main

import (
	"context"

	"github.com/vyrodovalexey/avcatalog/internal/config"
	"github.com/vyrodovalexey/avcatalog/internal/observability"
)

// startConfigWatcher starts watching the configuration file and applies
// reloadable settings on change. Returns nil when watching cannot be
// started; the server keeps running with the initial configuration.
func startConfigWatcher(app *application, configPath string, logger observability.Logger) *config.Watcher {
	watcher, err := config.NewWatcher(
		configPath,
		func(cfg *config.Config) { applyConfig(app, cfg, logger) },
		config.WithLogger(logger),
		config.WithErrorCallback(func(err error) {
			logger.Error("config reload failed", observability.Error(err))
		}),
	)
	if err != nil {
		logger.Error("failed to create config watcher", observability.Error(err))
		return nil
	}

	if err := watcher.Start(context.Background()); err != nil {
		logger.Error("failed to start config watcher", observability.Error(err))
		return nil
	}

	return watcher
}

// applyConfig applies a reloaded configuration. Only the data file path
// and the home page content are hot-swappable; listener address changes
// require a restart.
func applyConfig(app *application, cfg *config.Config, logger observability.Logger) {
	if cfg.Server != app.cfg.Server || cfg.Admin != app.cfg.Admin {
		logger.Warn("listener configuration changed, restart required to apply")
	}

	if cfg.Catalog.DataFile != app.store.Path() {
		logger.Info("switching data file",
			observability.String("old", app.store.Path()),
			observability.String("new", cfg.Catalog.DataFile),
		)
		app.store.SetPath(cfg.Catalog.DataFile)
	}

	if cfg.Static.HomeFile != "" {
		app.homePage.LoadFile(cfg.Static.HomeFile, logger)
	}

	logger.Info("configuration reloaded")
}
