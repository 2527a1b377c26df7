package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RecipeBox_Go/internal/kvstore"
	"github.com/osse101/RecipeBox_Go/internal/server"
	"github.com/osse101/RecipeBox_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Hub    *sse.Hub
	Store  kvstore.Store
}

// GracefulShutdown stops components in order:
// 1. SSE hub (close open event streams)
// 2. HTTP server (stop accepting new requests, drain in-flight ones)
// 3. Storage backend (release connections)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Event streams never finish on their own, so Server.Stop would wait on them
	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		if err := kvstore.Close(components.Store); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
