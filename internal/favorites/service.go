package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/RecipeBox_Go/internal/domain"
	"github.com/osse101/RecipeBox_Go/internal/event"
	"github.com/osse101/RecipeBox_Go/internal/kvstore"
	"github.com/osse101/RecipeBox_Go/internal/logger"
	"github.com/osse101/RecipeBox_Go/internal/metrics"
)

// Service keeps the user's favorite recipes
type Service interface {
	// Load replaces the in-memory favorites with the durable copy.
	// Storage problems never fail Load; they leave the list empty.
	Load(ctx context.Context)
	// Toggle removes the entry when a favorite with the same key exists
	// and appends it otherwise. added reports which one happened.
	Toggle(ctx context.Context, entry domain.FavoriteEntry) (added bool, err error)
	// ToggleKey removes the favorite stored under key without consulting
	// resolve. Only when nothing matches is resolve called for the entry to add.
	ToggleKey(ctx context.Context, key domain.FavoriteKey, resolve Resolver) (added bool, err error)
	IsFavorite(key domain.FavoriteKey) bool
	List() []domain.FavoriteEntry
	IsLoading() bool
}

// Resolver builds the entry to add for a key that is not yet a favorite
type Resolver func(key domain.FavoriteKey) (domain.FavoriteEntry, error)

type service struct {
	store     kvstore.Store
	publisher event.Publisher

	// writeMu serializes Load and Toggle so durable writes land in call order.
	// mu guards the fields below and is never held across storage calls.
	writeMu sync.Mutex
	mu      sync.RWMutex
	entries []domain.FavoriteEntry
	loading bool
}

// NewService creates a favorites service backed by store.
// Events carry snapshots; subscribers must not call back into the service.
func NewService(store kvstore.Store, publisher event.Publisher) Service {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &service{
		store:     store,
		publisher: publisher,
		entries:   []domain.FavoriteEntry{},
	}
}

func (s *service) Load(ctx context.Context) {
	log := logger.FromContext(ctx)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.setLoading(true)
	s.publish(ctx, event.NewLoadingEvent(event.FavoritesLoading, event.StoreFavorites, true))

	var raw []json.RawMessage
	_, err := kvstore.GetJSON(ctx, s.store, domain.StorageKeyFavorites, &raw)
	switch {
	case errors.Is(err, kvstore.ErrMalformed):
		log.Warn(LogMsgLoadMalformed, "error", err)
		raw = nil
	case err != nil:
		log.Error(LogMsgLoadFailed, "error", err)
		raw = nil
	}

	entries := decodeEntries(ctx, raw)
	s.mu.Lock()
	s.entries = entries
	s.loading = false
	s.mu.Unlock()
	log.Info(LogMsgLoaded, "count", len(entries))

	s.publish(ctx, event.NewLoadingEvent(event.FavoritesLoading, event.StoreFavorites, false))
	s.publish(ctx, event.NewFavoritesChangedEvent(s.snapshot()))
}

// decodeEntries keeps every readable entry with a unique key, in stored order
func decodeEntries(ctx context.Context, raw []json.RawMessage) []domain.FavoriteEntry {
	log := logger.FromContext(ctx)
	entries := make([]domain.FavoriteEntry, 0, len(raw))
	seen := make(map[domain.FavoriteKey]struct{}, len(raw))

	for i, item := range raw {
		var e domain.FavoriteEntry
		if err := json.Unmarshal(item, &e); err != nil {
			log.Warn(LogMsgSkippedEntry, "index", i, "error", err)
			continue
		}
		if err := e.Validate(); err != nil {
			log.Warn(LogMsgSkippedEntry, "index", i, "error", err)
			continue
		}
		key := e.Key()
		if _, dup := seen[key]; dup {
			log.Warn(LogMsgSkippedDuplicate, "index", i, "key", key.String())
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, e)
	}
	return entries
}

func (s *service) Toggle(ctx context.Context, entry domain.FavoriteEntry) (bool, error) {
	if err := entry.Validate(); err != nil {
		return false, err
	}
	return s.ToggleKey(ctx, entry.Key(), func(domain.FavoriteKey) (domain.FavoriteEntry, error) {
		return entry, nil
	})
}

func (s *service) ToggleKey(ctx context.Context, key domain.FavoriteKey, resolve Resolver) (bool, error) {
	if !key.Kind.Valid() || key.ID == "" {
		return false, fmt.Errorf("%w: key %q", domain.ErrInvalidFavorite, key.String())
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var entry domain.FavoriteEntry
	idx := s.indexOf(key)
	if idx < 0 {
		resolved, err := resolve(key)
		if err != nil {
			return false, err
		}
		if err := resolved.Validate(); err != nil {
			return false, err
		}
		entry = resolved
		key = resolved.Key()
		idx = s.indexOf(key)
		if idx < 0 {
			idx = s.indexOfLegacy(resolved)
		}
	}
	added := idx < 0

	next := make([]domain.FavoriteEntry, 0, len(s.entries)+1)
	for i, e := range s.entries {
		if i == idx {
			continue
		}
		next = append(next, e)
	}
	if added {
		next = append(next, entry)
	}

	if err := kvstore.SetJSON(ctx, s.store, domain.StorageKeyFavorites, next); err != nil {
		logger.FromContext(ctx).Error(LogMsgWriteFailed, "key", key.String(), "error", err)
		return false, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	s.mu.Lock()
	s.entries = next
	s.mu.Unlock()

	action := metrics.ActionRemoved
	if added {
		action = metrics.ActionAdded
	}
	metrics.FavoriteToggles.WithLabelValues(action).Inc()
	logger.FromContext(ctx).Info(LogMsgToggled, "key", key.String(), "action", action, "count", len(next))

	s.publish(ctx, event.NewFavoritesChangedEvent(s.snapshot()))
	return added, nil
}

// indexOf must be called with mu or writeMu held
func (s *service) indexOf(key domain.FavoriteKey) int {
	for i, e := range s.entries {
		if e.Key() == key {
			return i
		}
	}
	return -1
}

// indexOfLegacy finds a custom favorite stored before recipes had IDs.
// Those entries are keyed by title, so they match a resolved recipe with the same title.
func (s *service) indexOfLegacy(resolved domain.FavoriteEntry) int {
	if resolved.Kind != domain.FavoriteKindCustom || resolved.CustomRecipe == nil || resolved.CustomRecipe.ID == "" {
		return -1
	}
	for i, e := range s.entries {
		if e.IsLegacyCustom() && e.CustomRecipe.Title == resolved.CustomRecipe.Title {
			return i
		}
	}
	return -1
}

func (s *service) IsFavorite(key domain.FavoriteKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(key) >= 0
}

func (s *service) List() []domain.FavoriteEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *service) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *service) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// snapshot must be called with mu or writeMu held
func (s *service) snapshot() []domain.FavoriteEntry {
	out := make([]domain.FavoriteEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
