package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RecipeBox_Go/internal/catalog"
	"github.com/osse101/RecipeBox_Go/internal/customrecipe"
	"github.com/osse101/RecipeBox_Go/internal/domain"
	"github.com/osse101/RecipeBox_Go/internal/event"
	"github.com/osse101/RecipeBox_Go/internal/favorites"
	"github.com/osse101/RecipeBox_Go/internal/kvstore"
	"github.com/osse101/RecipeBox_Go/internal/sse"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return newTestServerWithStore(t, kvstore.NewMemoryStore())
}

// newTestServerWithStore hydrates both stores from store before serving
func newTestServerWithStore(t *testing.T, store kvstore.Store) http.Handler {
	t.Helper()
	captureLogs(t)

	cat, err := catalog.NewDefault()
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	fav := favorites.NewService(store, bus)
	custom := customrecipe.NewService(store, bus)
	fav.Load(context.Background())
	custom.Load(context.Background())

	srv := NewServer(Options{Addr: ":0", Version: "test", CORSAllowedOrigins: []string{"*"}}, Services{
		Catalog:       cat,
		Favorites:     fav,
		CustomRecipes: custom,
		Storage:       kvstore.Checker(store),
		Hub:           hub,
	})
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	return rec
}

func TestServer_Health(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := do(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestServer_CatalogRoutes(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/v1/recipes?category=chicken", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Teriyaki Chicken Casserole")

	rec = do(t, h, http.MethodGet, "/api/v1/recipes/52772", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/recipes/0", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_FavoriteToggleRoundTrip(t *testing.T) {
	h := newTestServer(t)
	toggle := map[string]string{"kind": "catalog", "id": "52772"}

	rec := do(t, h, http.MethodPost, "/api/v1/favorites/toggle", toggle)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorite":true`)

	rec = do(t, h, http.MethodGet, "/api/v1/favorites/status?kind=catalog&id=52772", nil)
	assert.JSONEq(t, `{"favorite":true}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/v1/favorites/toggle", toggle)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorite":false`)

	rec = do(t, h, http.MethodGet, "/api/v1/favorites/status?kind=catalog&id=52772", nil)
	assert.JSONEq(t, `{"favorite":false}`, rec.Body.String())
}

func TestServer_FavoriteOfDeletedCustomRecipeCanBeRemoved(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/custom-recipes", domain.RecipeForm{Title: "Soup", Image: "img", Description: "Hot"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var soup domain.CustomRecipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &soup))
	toggle := map[string]string{"kind": "custom", "id": soup.ID}

	rec = do(t, h, http.MethodPost, "/api/v1/favorites/toggle", toggle)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorite":true`)

	rec = do(t, h, http.MethodDelete, "/api/v1/custom-recipes/"+soup.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/favorites/status?kind=custom&id="+soup.ID, nil)
	assert.JSONEq(t, `{"favorite":true}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/v1/favorites/toggle", toggle)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorite":false`)

	rec = do(t, h, http.MethodGet, "/api/v1/favorites", nil)
	assert.JSONEq(t, `{"favorites":[],"loading":false}`, rec.Body.String())

	// adding it back needs the recipe, which is gone
	rec = do(t, h, http.MethodPost, "/api/v1/favorites/toggle", toggle)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_TitleKeyedFavoriteTogglesOffByRecipeID(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, domain.StorageKeyCustomRecipes, `[{"title":"Soup","image":"img","description":"Hot"}]`))
	require.NoError(t, store.Set(ctx, domain.StorageKeyFavorites, `[{"title":"Soup","image":"img","description":"Hot"}]`))
	h := newTestServerWithStore(t, store)

	rec := do(t, h, http.MethodGet, "/api/v1/custom-recipes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Recipes []domain.CustomRecipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Recipes, 1)
	id := list.Recipes[0].ID
	require.NotEmpty(t, id)

	rec = do(t, h, http.MethodGet, "/api/v1/favorites/status?kind=custom&id="+id, nil)
	assert.JSONEq(t, `{"favorite":true}`, rec.Body.String())

	toggle := map[string]string{"kind": "custom", "id": id}
	rec = do(t, h, http.MethodPost, "/api/v1/favorites/toggle", toggle)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorite":false`)
	assert.Contains(t, rec.Body.String(), `"favorites":[]`)

	rec = do(t, h, http.MethodPost, "/api/v1/favorites/toggle", toggle)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Favorite  bool                   `json:"favorite"`
		Favorites []domain.FavoriteEntry `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Favorite)
	require.Len(t, resp.Favorites, 1)
	assert.Equal(t, domain.FavoriteKey{Kind: domain.FavoriteKindCustom, ID: id}, resp.Favorites[0].Key())
}

func TestServer_CustomRecipeLifecycle(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/custom-recipes", domain.RecipeForm{Title: "Soup"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill in all fields")

	rec = do(t, h, http.MethodPost, "/api/v1/custom-recipes", domain.RecipeForm{Title: "Soup", Image: "img", Description: "Hot"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.CustomRecipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rec = do(t, h, http.MethodPut, "/api/v1/custom-recipes/index/0", domain.RecipeForm{Title: "Stew", Image: "img", Description: "Hot"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/custom-recipes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Stew"`)

	rec = do(t, h, http.MethodDelete, "/api/v1/custom-recipes/index/5", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/custom-recipes/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/custom-recipes", nil)
	assert.JSONEq(t, `{"recipes":[],"loading":false}`, rec.Body.String())
}
