package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vyrodovalexey/avcatalog/internal/config"
	"github.com/vyrodovalexey/avcatalog/internal/observability"
)

// shutdownTimeout bounds graceful shutdown of the listeners.
const shutdownTimeout = 30 * time.Second

// runServer runs the server and handles shutdown.
func runServer(app *application, configPath string, logger observability.Logger) {
	ctx := context.Background()

	if err := app.start(ctx); err != nil {
		fatalWithSync(logger, "failed to start server", observability.Error(err))
		return // unreachable in production; allows test to continue
	}

	watcher := startConfigWatcher(app, configPath, logger)

	waitForShutdown(app, watcher, logger)
}

// waitForShutdown waits for a shutdown signal and performs graceful
// shutdown.
func waitForShutdown(app *application, watcher *config.Watcher, logger observability.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("received shutdown signal", observability.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if watcher != nil {
		_ = watcher.Stop()
	}

	app.stop(shutdownCtx)

	logger.Info("server stopped")
}

// fatalWithSync logs a fatal message after flushing buffered entries.
func fatalWithSync(logger observability.Logger, msg string, fields ...observability.Field) {
	_ = logger.Sync()
	logger.Fatal(msg, fields...)
}
