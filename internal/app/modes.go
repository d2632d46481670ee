package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simpletools/pkg/logging"
)

// shutdownTimeout bounds how long a graceful stop may take once a shutdown
// signal arrives.
const shutdownTimeout = 10 * time.Second

// runServer starts the wired services, blocks until SIGINT, SIGTERM or
// context cancellation, and shuts down gracefully.
func runServer(ctx context.Context, services *Services) error {
	if services.watcher != nil {
		if err := services.watcher.Start(); err != nil {
			// Best-effort: without the watch, cached entries age out on
			// their own.
			logging.Warn("App", "Credential watcher unavailable: %v", err)
		}
	}

	if err := services.Server.Start(ctx); err != nil {
		logging.Error("App", err, "Failed to start MCP server")
		return err
	}

	logging.Info("App", "simpletools server running on %s. Press Ctrl+C to stop.", services.Server.Endpoint())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		logging.Info("App", "Received signal %s, shutting down", sig)
	case <-ctx.Done():
		logging.Info("App", "Context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if services.watcher != nil {
		if err := services.watcher.Stop(); err != nil {
			logging.Warn("App", "Error stopping credential watcher: %v", err)
		}
	}

	return services.Server.Stop(shutdownCtx)
}
