package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RecipeBox_Go/internal/domain"
	"github.com/osse101/RecipeBox_Go/internal/favorites"
)

// MockCatalog mocks catalog.Service
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Categories() []domain.Category {
	args := m.Called()
	return args.Get(0).([]domain.Category)
}

func (m *MockCatalog) ByCategory(name string) []domain.Recipe {
	args := m.Called(name)
	return args.Get(0).([]domain.Recipe)
}

func (m *MockCatalog) Get(idFood string) (domain.Recipe, error) {
	args := m.Called(idFood)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

func (m *MockCatalog) Search(query string) []domain.Recipe {
	args := m.Called(query)
	return args.Get(0).([]domain.Recipe)
}

func (m *MockCatalog) All() []domain.Recipe {
	args := m.Called()
	return args.Get(0).([]domain.Recipe)
}

// MockFavorites mocks favorites.Service.
// ToggleKey calls the resolver when it reports an add, as the real store does.
type MockFavorites struct {
	mock.Mock
	Resolved []domain.FavoriteEntry
}

func (m *MockFavorites) Load(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockFavorites) Toggle(ctx context.Context, entry domain.FavoriteEntry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavorites) ToggleKey(ctx context.Context, key domain.FavoriteKey, resolve favorites.Resolver) (bool, error) {
	args := m.Called(ctx, key)
	added, err := args.Bool(0), args.Error(1)
	if err != nil || !added {
		return added, err
	}
	entry, err := resolve(key)
	if err != nil {
		return false, err
	}
	m.Resolved = append(m.Resolved, entry)
	return true, nil
}

func (m *MockFavorites) IsFavorite(key domain.FavoriteKey) bool {
	args := m.Called(key)
	return args.Bool(0)
}

func (m *MockFavorites) List() []domain.FavoriteEntry {
	args := m.Called()
	return args.Get(0).([]domain.FavoriteEntry)
}

func (m *MockFavorites) IsLoading() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockCustomRecipes mocks customrecipe.Service
type MockCustomRecipes struct {
	mock.Mock
}

func (m *MockCustomRecipes) Load(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockCustomRecipes) Save(ctx context.Context, form domain.RecipeForm, editIndex *int) (domain.CustomRecipe, error) {
	args := m.Called(ctx, form, editIndex)
	return args.Get(0).(domain.CustomRecipe), args.Error(1)
}

func (m *MockCustomRecipes) Create(ctx context.Context, form domain.RecipeForm) (domain.CustomRecipe, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(domain.CustomRecipe), args.Error(1)
}

func (m *MockCustomRecipes) Update(ctx context.Context, id string, form domain.RecipeForm) (domain.CustomRecipe, error) {
	args := m.Called(ctx, id, form)
	return args.Get(0).(domain.CustomRecipe), args.Error(1)
}

func (m *MockCustomRecipes) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomRecipes) DeleteAt(ctx context.Context, index int) error {
	args := m.Called(ctx, index)
	return args.Error(0)
}

func (m *MockCustomRecipes) List() []domain.CustomRecipe {
	args := m.Called()
	return args.Get(0).([]domain.CustomRecipe)
}

func (m *MockCustomRecipes) Get(id string) (domain.CustomRecipe, error) {
	args := m.Called(id)
	return args.Get(0).(domain.CustomRecipe), args.Error(1)
}

func (m *MockCustomRecipes) IsLoading() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockPinger mocks a storage backend health check
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
