package bootstrap

import (
	"log/slog"

	"github.com/osse101/RecipeBox_Go/internal/event"
	"github.com/osse101/RecipeBox_Go/internal/metrics"
	"github.com/osse101/RecipeBox_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and the SSE hub, and subscribes
// the metrics collector and the SSE bridge to store events.
// The hub is started; the caller stops it on shutdown.
func InitializeEventSystem() (*event.MemoryBus, *sse.Hub) {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	hub := sse.NewHub()
	hub.Start()
	sse.NewBridge(hub, bus).Subscribe()

	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.AllTypes))
	return bus, hub
}
