package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RecipeBox_Go/internal/catalog"
	"github.com/osse101/RecipeBox_Go/internal/domain"
)

// CatalogHandler serves the bundled recipe catalog
type CatalogHandler struct {
	catalog catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(c catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// CategoriesResponse lists catalog categories
type CategoriesResponse struct {
	Categories      []domain.Category `json:"categories"`
	DefaultCategory string            `json:"default_category"`
}

// RecipesResponse lists catalog recipes
type RecipesResponse struct {
	Recipes []domain.Recipe `json:"recipes"`
	Count   int             `json:"count"`
}

// HandleCategories lists the catalog categories
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /api/v1/categories [get]
func (h *CatalogHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CategoriesResponse{
		Categories:      h.catalog.Categories(),
		DefaultCategory: domain.DefaultCategory,
	})
}

// HandleRecipes lists catalog recipes, filtered by category or search text
// @Summary List recipes
// @Description Filters by category when given, otherwise by search text; with neither returns everything
// @Tags catalog
// @Produce json
// @Param category query string false "Category name (case-insensitive)"
// @Param q query string false "Search text matched against names and ingredients"
// @Success 200 {object} RecipesResponse
// @Router /api/v1/recipes [get]
func (h *CatalogHandler) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	var recipes []domain.Recipe
	category := GetOptionalQueryParam(r, QueryCategory, "")
	query := GetOptionalQueryParam(r, QuerySearch, "")

	switch {
	case category != "" && query != "":
		recipes = intersect(h.catalog.ByCategory(category), h.catalog.Search(query))
	case category != "":
		recipes = h.catalog.ByCategory(category)
	case query != "":
		recipes = h.catalog.Search(query)
	default:
		recipes = h.catalog.All()
	}

	respondJSON(w, http.StatusOK, RecipesResponse{Recipes: recipes, Count: len(recipes)})
}

// HandleRecipe returns one catalog recipe
// @Summary Get recipe
// @Tags catalog
// @Produce json
// @Param id path string true "Recipe idFood"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [get]
func (h *CatalogHandler) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.catalog.Get(chi.URLParam(r, ParamID))
	if err != nil {
		respondServiceError(w, r, "Get recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}

func intersect(a, b []domain.Recipe) []domain.Recipe {
	keep := make(map[string]bool, len(b))
	for _, r := range b {
		keep[r.IDFood] = true
	}
	out := []domain.Recipe{}
	for _, r := range a {
		if keep[r.IDFood] {
			out = append(out, r)
		}
	}
	return out
}
