package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/RecipeBox_Go/internal/catalog"
	"github.com/osse101/RecipeBox_Go/internal/customrecipe"
	"github.com/osse101/RecipeBox_Go/internal/domain"
	"github.com/osse101/RecipeBox_Go/internal/favorites"
)

// FavoritesHandler exposes the favorites store
type FavoritesHandler struct {
	favorites favorites.Service
	catalog   catalog.Service
	custom    customrecipe.Service
}

// NewFavoritesHandler creates a new favorites handler.
// Toggled recipes are looked up in the catalog or the custom recipe store by kind.
func NewFavoritesHandler(fav favorites.Service, c catalog.Service, custom customrecipe.Service) *FavoritesHandler {
	return &FavoritesHandler{favorites: fav, catalog: c, custom: custom}
}

// ToggleFavoriteRequest names the recipe to toggle
type ToggleFavoriteRequest struct {
	Kind string `json:"kind" validate:"required,oneof=catalog custom"`
	ID   string `json:"id" validate:"required,max=200"`
}

// FavoritesResponse is the favorites collection
type FavoritesResponse struct {
	Favorites []domain.FavoriteEntry `json:"favorites"`
	Loading   bool                   `json:"loading"`
}

// FavoriteStatusResponse tells whether one recipe is a favorite
type FavoriteStatusResponse struct {
	Favorite bool `json:"favorite"`
}

// ToggleFavoriteResponse is the result of a toggle
type ToggleFavoriteResponse struct {
	Favorite  bool                   `json:"favorite"`
	Favorites []domain.FavoriteEntry `json:"favorites"`
}

// HandleList returns all favorites
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} FavoritesResponse
// @Router /api/v1/favorites [get]
func (h *FavoritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, FavoritesResponse{
		Favorites: h.favorites.List(),
		Loading:   h.favorites.IsLoading(),
	})
}

// HandleStatus reports whether a recipe is a favorite
// @Summary Favorite status
// @Tags favorites
// @Produce json
// @Param kind query string true "catalog or custom"
// @Param id query string true "Recipe identifier"
// @Success 200 {object} FavoriteStatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/favorites/status [get]
func (h *FavoritesHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	kind, ok := GetQueryParam(r, w, QueryKind)
	if !ok {
		return
	}
	id, ok := GetQueryParam(r, w, ParamID)
	if !ok {
		return
	}
	if !domain.FavoriteKind(kind).Valid() {
		respondServiceError(w, r, "Favorite status", fmt.Errorf("%w: kind %q", domain.ErrInvalidInput, kind))
		return
	}

	key := domain.FavoriteKey{Kind: domain.FavoriteKind(kind), ID: id}
	respondJSON(w, http.StatusOK, FavoriteStatusResponse{Favorite: h.isFavorite(key)})
}

// isFavorite also matches custom favorites stored under the recipe title before recipes had IDs
func (h *FavoritesHandler) isFavorite(key domain.FavoriteKey) bool {
	if h.favorites.IsFavorite(key) {
		return true
	}
	if key.Kind != domain.FavoriteKindCustom {
		return false
	}
	recipe, err := h.custom.Get(key.ID)
	if err != nil {
		return false
	}
	return h.favorites.IsFavorite(domain.LegacyCustomKey(recipe.Title))
}

// HandleToggle adds or removes a favorite.
// Removing never looks the recipe up, so favorites of deleted custom recipes can still be removed.
// @Summary Toggle favorite
// @Description Adds the recipe to favorites, or removes it when it is already there
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body ToggleFavoriteRequest true "Recipe to toggle"
// @Success 200 {object} ToggleFavoriteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/favorites/toggle [post]
func (h *FavoritesHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var req ToggleFavoriteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Toggle favorite"); err != nil {
		return
	}

	key := domain.FavoriteKey{Kind: domain.FavoriteKind(req.Kind), ID: req.ID}
	added, err := h.favorites.ToggleKey(r.Context(), key, h.resolve)
	if err != nil {
		respondServiceError(w, r, "Toggle favorite", err)
		return
	}

	respondJSON(w, http.StatusOK, ToggleFavoriteResponse{
		Favorite:  added,
		Favorites: h.favorites.List(),
	})
}

// HandleReload re-reads favorites from storage
// @Summary Reload favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} FavoritesResponse
// @Router /api/v1/favorites/reload [post]
func (h *FavoritesHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	h.favorites.Load(r.Context())
	respondJSON(w, http.StatusOK, FavoritesResponse{
		Favorites: h.favorites.List(),
		Loading:   h.favorites.IsLoading(),
	})
}

// resolve builds a by-value favorite entry for the recipe named by key
func (h *FavoritesHandler) resolve(key domain.FavoriteKey) (domain.FavoriteEntry, error) {
	switch key.Kind {
	case domain.FavoriteKindCatalog:
		recipe, err := h.catalog.Get(key.ID)
		if err != nil {
			return domain.FavoriteEntry{}, err
		}
		return domain.NewCatalogFavorite(recipe), nil
	case domain.FavoriteKindCustom:
		recipe, err := h.custom.Get(key.ID)
		if err != nil {
			return domain.FavoriteEntry{}, err
		}
		return domain.NewCustomFavorite(recipe), nil
	}
	return domain.FavoriteEntry{}, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidFavorite, key.Kind)
}
