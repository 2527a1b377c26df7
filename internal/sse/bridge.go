package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/RecipeBox_Go/internal/event"
)

// Bridge forwards store events from the internal bus to the SSE hub
type Bridge struct {
	hub *Hub
	bus event.Bus
}

// NewBridge creates a new Bridge
func NewBridge(hub *Hub, bus event.Bus) *Bridge {
	return &Bridge{hub: hub, bus: bus}
}

// Subscribe registers the bridge for every store event type
func (b *Bridge) Subscribe() {
	names := make([]string, 0, len(event.AllTypes))
	for _, t := range event.AllTypes {
		b.bus.Subscribe(t, b.forward)
		names = append(names, string(t))
	}
	slog.Info(LogMsgBridgeRegistered, "types", names)
}

func (b *Bridge) forward(_ context.Context, evt event.Event) error {
	b.hub.Broadcast(string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
