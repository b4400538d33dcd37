package main

import (
	"context"

	"github.com/vyrodovalexey/avcatalog/internal/catalog"
	"github.com/vyrodovalexey/avcatalog/internal/config"
	"github.com/vyrodovalexey/avcatalog/internal/health"
	"github.com/vyrodovalexey/avcatalog/internal/observability"
	"github.com/vyrodovalexey/avcatalog/internal/server"
)

// application holds all application components.
type application struct {
	cfg           *config.Config
	store         *catalog.FileStore
	homePage      *server.StaticPage
	handler       *server.Handler
	listener      *server.Listener
	adminListener *server.Listener
	logger        observability.Logger
}

// initApplication wires the application components from configuration.
func initApplication(cfg *config.Config, logger observability.Logger) *application {
	store := catalog.NewFileStore(cfg.Catalog.DataFile, catalog.WithStoreLogger(logger))
	homePage := server.NewHomePage(cfg.Static.HomeFile, logger)

	handler := server.NewHandler(cfg, store, homePage, logger)

	listener := server.NewListener(
		"main", cfg.Server.Bind, cfg.Server.Port, handler,
		server.WithListenerLogger(logger),
	)

	app := &application{
		cfg:      cfg,
		store:    store,
		homePage: homePage,
		handler:  handler,
		listener: listener,
		logger:   logger,
	}

	if cfg.Admin.Enabled {
		healthHandler := health.NewHandler(logger)
		healthHandler.AddCheck(health.NewDataFileCheck("data-file", store.Path))

		app.adminListener = server.NewListener(
			"admin", cfg.Admin.Bind, cfg.Admin.Port,
			server.NewAdminHandler(healthHandler),
			server.WithListenerLogger(logger),
		)
	}

	return app
}

// start starts the listeners.
func (app *application) start(ctx context.Context) error {
	if err := app.listener.Start(ctx); err != nil {
		return err
	}

	if app.adminListener != nil {
		if err := app.adminListener.Start(ctx); err != nil {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = app.listener.Stop(stopCtx)
			return err
		}
	}

	return nil
}

// stop stops the listeners gracefully.
func (app *application) stop(ctx context.Context) {
	if app.adminListener != nil {
		if err := app.adminListener.Stop(ctx); err != nil {
			app.logger.Error("failed to stop admin listener gracefully", observability.Error(err))
		}
	}

	if err := app.listener.Stop(ctx); err != nil {
		app.logger.Error("failed to stop listener gracefully", observability.Error(err))
	}
}
