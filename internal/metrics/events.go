package metrics

import (
	"context"

	"github.com/osse101/RecipeBox_Go/internal/event"
	"github.com/osse101/RecipeBox_Go/internal/logger"
)

// EventMetricsCollector subscribes to store events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all store events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.FavoritesChangedPayloadV1:
		FavoritesCount.Set(float64(payload.Count))
	case event.CustomRecipesChangedPayloadV1:
		CustomRecipesCount.Set(float64(payload.Count))
	case event.LoadingPayloadV1:
	default:
		logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type)
	}

	return nil
}
