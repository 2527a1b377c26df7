package customrecipe

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/RecipeBox_Go/internal/domain"
	"github.com/osse101/RecipeBox_Go/internal/event"
	"github.com/osse101/RecipeBox_Go/internal/kvstore"
	"github.com/osse101/RecipeBox_Go/internal/logger"
	"github.com/osse101/RecipeBox_Go/internal/metrics"
)

// legacyNamespace seeds the IDs derived for records stored before IDs existed
var legacyNamespace = uuid.MustParse("9b3c1f52-5d0e-4d8a-9a57-2f0c4e1d7a11")

// Service manages recipes authored by the user
type Service interface {
	// Load replaces the in-memory recipes with the durable copy.
	// Storage problems never fail Load; they leave the list empty.
	Load(ctx context.Context)
	// Save appends the form as a new recipe when editIndex is nil and
	// replaces the recipe at *editIndex otherwise. Positions refer to the
	// durable sequence at the time of the call.
	Save(ctx context.Context, form domain.RecipeForm, editIndex *int) (domain.CustomRecipe, error)
	Create(ctx context.Context, form domain.RecipeForm) (domain.CustomRecipe, error)
	Update(ctx context.Context, id string, form domain.RecipeForm) (domain.CustomRecipe, error)
	Delete(ctx context.Context, id string) error
	// DeleteAt removes the recipe at index in the in-memory sequence
	DeleteAt(ctx context.Context, index int) error
	List() []domain.CustomRecipe
	Get(id string) (domain.CustomRecipe, error)
	IsLoading() bool
}

type service struct {
	store     kvstore.Store
	publisher event.Publisher
	validate  *validator.Validate
	now       func() time.Time
	newID     func() string

	// writeMu serializes Load and every mutation; mu guards the fields below
	writeMu sync.Mutex
	mu      sync.RWMutex
	recipes []domain.CustomRecipe
	loading bool
}

// NewService creates a custom recipe service backed by store.
// Events carry snapshots; subscribers must not call back into the service.
func NewService(store kvstore.Store, publisher event.Publisher) Service {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &service{
		store:     store,
		publisher: publisher,
		validate:  newValidator(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		recipes:   []domain.CustomRecipe{},
	}
}

func (s *service) Load(ctx context.Context) {
	log := logger.FromContext(ctx)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.setLoading(true)
	s.publish(ctx, event.NewLoadingEvent(event.CustomRecipesLoading, event.StoreCustomRecipes, true))

	recipes, err := s.readDurable(ctx)
	if err != nil {
		if errors.Is(err, kvstore.ErrMalformed) {
			log.Warn(LogMsgLoadMalformed, "error", err)
		} else {
			log.Error(LogMsgLoadFailed, "error", err)
		}
		recipes = []domain.CustomRecipe{}
	}

	s.mu.Lock()
	s.recipes = recipes
	s.loading = false
	s.mu.Unlock()
	log.Info(LogMsgLoaded, "count", len(recipes))

	s.publish(ctx, event.NewLoadingEvent(event.CustomRecipesLoading, event.StoreCustomRecipes, false))
	s.publish(ctx, event.NewCustomRecipesChangedEvent(s.snapshot()))
}

func (s *service) Save(ctx context.Context, form domain.RecipeForm, editIndex *int) (domain.CustomRecipe, error) {
	op := OpCreate
	if editIndex != nil {
		op = OpUpdate
	}

	form = form.Trimmed()
	if err := validateForm(s.validate, form); err != nil {
		metrics.CustomRecipeOps.WithLabelValues(op, metrics.ResultError).Inc()
		return domain.CustomRecipe{}, err
	}

	return s.mutateDurable(ctx, op, func(recipes []domain.CustomRecipe) ([]domain.CustomRecipe, domain.CustomRecipe, error) {
		if editIndex == nil {
			return s.appendForm(recipes, form)
		}
		index := *editIndex
		if index < 0 || index >= len(recipes) {
			return nil, domain.CustomRecipe{}, fmt.Errorf("%w: %d (have %d)", domain.ErrIndexOutOfRange, index, len(recipes))
		}
		return s.replaceAt(recipes, index, form)
	})
}

func (s *service) Create(ctx context.Context, form domain.RecipeForm) (domain.CustomRecipe, error) {
	return s.Save(ctx, form, nil)
}

func (s *service) Update(ctx context.Context, id string, form domain.RecipeForm) (domain.CustomRecipe, error) {
	form = form.Trimmed()
	if err := validateForm(s.validate, form); err != nil {
		metrics.CustomRecipeOps.WithLabelValues(OpUpdate, metrics.ResultError).Inc()
		return domain.CustomRecipe{}, err
	}

	return s.mutateDurable(ctx, OpUpdate, func(recipes []domain.CustomRecipe) ([]domain.CustomRecipe, domain.CustomRecipe, error) {
		index := indexOf(recipes, id)
		if index < 0 {
			return nil, domain.CustomRecipe{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
		}
		return s.replaceAt(recipes, index, form)
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	_, err := s.mutateDurable(ctx, OpDelete, func(recipes []domain.CustomRecipe) ([]domain.CustomRecipe, domain.CustomRecipe, error) {
		index := indexOf(recipes, id)
		if index < 0 {
			return nil, domain.CustomRecipe{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
		}
		return removeAt(recipes, index)
	})
	return err
}

func (s *service) DeleteAt(ctx context.Context, index int) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.recipes
	if index < 0 || index >= len(current) {
		metrics.CustomRecipeOps.WithLabelValues(OpDelete, metrics.ResultError).Inc()
		return fmt.Errorf("%w: %d (have %d)", domain.ErrIndexOutOfRange, index, len(current))
	}

	next, removed, _ := removeAt(current, index)
	_, err := s.commit(ctx, OpDelete, next, removed)
	return err
}

func (s *service) List() []domain.CustomRecipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *service) Get(id string) (domain.CustomRecipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.recipes, id); i >= 0 {
		return s.recipes[i], nil
	}
	return domain.CustomRecipe{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
}

func (s *service) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

type mutation func(recipes []domain.CustomRecipe) (next []domain.CustomRecipe, affected domain.CustomRecipe, err error)

// mutateDurable applies fn to a fresh read of the durable sequence, writes the
// result and only then replaces the in-memory sequence.
func (s *service) mutateDurable(ctx context.Context, op string, fn mutation) (domain.CustomRecipe, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	recipes, err := s.readDurable(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgReadFailed, "op", op, "error", err)
		metrics.CustomRecipeOps.WithLabelValues(op, metrics.ResultError).Inc()
		return domain.CustomRecipe{}, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	next, affected, err := fn(recipes)
	if err != nil {
		metrics.CustomRecipeOps.WithLabelValues(op, metrics.ResultError).Inc()
		return domain.CustomRecipe{}, err
	}
	return s.commit(ctx, op, next, affected)
}

// commit writes next and publishes it as the new state. writeMu must be held.
func (s *service) commit(ctx context.Context, op string, next []domain.CustomRecipe, affected domain.CustomRecipe) (domain.CustomRecipe, error) {
	log := logger.FromContext(ctx)

	if err := kvstore.SetJSON(ctx, s.store, domain.StorageKeyCustomRecipes, next); err != nil {
		log.Error(LogMsgWriteFailed, "op", op, "id", affected.ID, "error", err)
		metrics.CustomRecipeOps.WithLabelValues(op, metrics.ResultError).Inc()
		return domain.CustomRecipe{}, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	s.mu.Lock()
	s.recipes = next
	s.mu.Unlock()

	metrics.CustomRecipeOps.WithLabelValues(op, metrics.ResultSuccess).Inc()
	if op == OpDelete {
		log.Info(LogMsgDeleted, "id", affected.ID, "title", affected.Title, "count", len(next))
	} else {
		log.Info(LogMsgSaved, "op", op, "id", affected.ID, "title", affected.Title, "count", len(next))
	}

	s.publish(ctx, event.NewCustomRecipesChangedEvent(s.snapshot()))
	return affected, nil
}

// readDurable returns the stored sequence, giving legacy records a stable ID
func (s *service) readDurable(ctx context.Context) ([]domain.CustomRecipe, error) {
	var recipes []domain.CustomRecipe
	if _, err := kvstore.GetJSON(ctx, s.store, domain.StorageKeyCustomRecipes, &recipes); err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []domain.CustomRecipe{}
	}
	for i := range recipes {
		if recipes[i].ID == "" {
			recipes[i].ID = legacyID(i, recipes[i])
		}
	}
	return recipes, nil
}

// legacyID derives the same ID for a record as long as the stored sequence is unchanged
func legacyID(index int, r domain.CustomRecipe) string {
	return uuid.NewSHA1(legacyNamespace, []byte(fmt.Sprintf("%d:%s", index, r.Title))).String()
}

func (s *service) appendForm(recipes []domain.CustomRecipe, form domain.RecipeForm) ([]domain.CustomRecipe, domain.CustomRecipe, error) {
	now := s.now()
	r := domain.CustomRecipe{ID: s.newID(), CreatedAt: now, UpdatedAt: now}
	form.ApplyTo(&r)

	next := make([]domain.CustomRecipe, len(recipes), len(recipes)+1)
	copy(next, recipes)
	return append(next, r), r, nil
}

func (s *service) replaceAt(recipes []domain.CustomRecipe, index int, form domain.RecipeForm) ([]domain.CustomRecipe, domain.CustomRecipe, error) {
	r := domain.CustomRecipe{
		ID:        recipes[index].ID,
		CreatedAt: recipes[index].CreatedAt,
		UpdatedAt: s.now(),
	}
	form.ApplyTo(&r)

	next := make([]domain.CustomRecipe, len(recipes))
	copy(next, recipes)
	next[index] = r
	return next, r, nil
}

func removeAt(recipes []domain.CustomRecipe, index int) ([]domain.CustomRecipe, domain.CustomRecipe, error) {
	next := make([]domain.CustomRecipe, 0, len(recipes)-1)
	next = append(next, recipes[:index]...)
	next = append(next, recipes[index+1:]...)
	return next, recipes[index], nil
}

func indexOf(recipes []domain.CustomRecipe, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *service) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// snapshot must be called with mu or writeMu held
func (s *service) snapshot() []domain.CustomRecipe {
	out := make([]domain.CustomRecipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
