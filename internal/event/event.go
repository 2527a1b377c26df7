package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/RecipeBox_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Store event types
const (
	FavoritesLoading     Type = "favorites.loading"
	FavoritesChanged     Type = "favorites.changed"
	CustomRecipesLoading Type = "custom_recipes.loading"
	CustomRecipesChanged Type = "custom_recipes.changed"
)

// AllTypes lists every event type published by the stores
var AllTypes = []Type{
	FavoritesLoading,
	FavoritesChanged,
	CustomRecipesLoading,
	CustomRecipesChanged,
}

// Typed event payloads for type safety

// LoadingPayloadV1 reports a store's loading flag
type LoadingPayloadV1 struct {
	Store   string `json:"store"`
	Loading bool   `json:"loading"`
}

// FavoritesChangedPayloadV1 carries the full favorites sequence after a change
type FavoritesChangedPayloadV1 struct {
	Favorites []domain.FavoriteEntry `json:"favorites"`
	Count     int                    `json:"count"`
}

// CustomRecipesChangedPayloadV1 carries the full custom recipe sequence after a change
type CustomRecipesChangedPayloadV1 struct {
	Recipes []domain.CustomRecipe `json:"recipes"`
	Count   int                   `json:"count"`
}

// NewLoadingEvent creates a loading event for the given store
func NewLoadingEvent(eventType Type, store string, loading bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: LoadingPayloadV1{
			Store:   store,
			Loading: loading,
		},
	}
}

// NewFavoritesChangedEvent creates a favorites changed event
func NewFavoritesChangedEvent(favorites []domain.FavoriteEntry) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FavoritesChanged,
		Payload: FavoritesChangedPayloadV1{
			Favorites: favorites,
			Count:     len(favorites),
		},
	}
}

// NewCustomRecipesChangedEvent creates a custom recipes changed event
func NewCustomRecipesChangedEvent(recipes []domain.CustomRecipe) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CustomRecipesChanged,
		Payload: CustomRecipesChangedPayloadV1{
			Recipes: recipes,
			Count:   len(recipes),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the publishing half of a Bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// NopPublisher discards every event. Useful when a store runs without a UI attached.
type NopPublisher struct{}

// Publish implements Publisher
func (NopPublisher) Publish(context.Context, Event) error { return nil }
