package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Cultivation_Go/internal/event"
	"github.com/osse101/Cultivation_Go/internal/server"
	"github.com/osse101/Cultivation_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	DailyResetWorker   *worker.DailyResetWorker
	ResilientPublisher *event.ResilientPublisher
	Repositories       *Repositories
}

// GracefulShutdown stops components in dependency order:
// the HTTP server, then the reset worker, then the publisher so pending events flush,
// and finally the store. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DailyResetWorker != nil {
		if err := components.DailyResetWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgDailyResetWorkerFailed, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Repositories != nil {
		components.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}
