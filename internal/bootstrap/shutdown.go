package bootstrap

import (
	"context"
	"log/slog"
)

// stoppable is anything with a context-bound graceful stop, such as
// *server.Server.
type stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds everything that needs a graceful stop. Nil
// fields are skipped.
type ShutdownComponents struct {
	Server   stoppable
	Bot      stoppable
	Services *Services
}

// GracefulShutdown stops the front ends first so no new work arrives, then
// drains the optimizer pool. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Bot != nil {
		if err := components.Bot.Stop(ctx); err != nil {
			slog.Error(LogMsgBotShutdownFailed, "error", err)
		}
	}

	if components.Services != nil {
		components.Services.Close()
	}

	slog.Info(LogMsgServerStopped)
}
