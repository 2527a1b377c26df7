package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RecipeBox_Go/internal/customrecipe"
	"github.com/osse101/RecipeBox_Go/internal/domain"
)

// CustomRecipeHandler exposes the custom recipe store
type CustomRecipeHandler struct {
	service customrecipe.Service
}

// NewCustomRecipeHandler creates a new custom recipe handler
func NewCustomRecipeHandler(service customrecipe.Service) *CustomRecipeHandler {
	return &CustomRecipeHandler{service: service}
}

// CustomRecipesResponse is the custom recipe collection
type CustomRecipesResponse struct {
	Recipes []domain.CustomRecipe `json:"recipes"`
	Loading bool                  `json:"loading"`
}

// decodeForm reads a recipe form. Field rules are enforced by the service after trimming.
func decodeForm(w http.ResponseWriter, r *http.Request, action string) (domain.RecipeForm, bool) {
	var form domain.RecipeForm
	if err := decodeJSON(w, r, &form, action); err != nil {
		return form, false
	}
	return form, true
}

// HandleList returns all custom recipes
// @Summary List custom recipes
// @Tags custom-recipes
// @Produce json
// @Success 200 {object} CustomRecipesResponse
// @Router /api/v1/custom-recipes [get]
func (h *CustomRecipeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CustomRecipesResponse{
		Recipes: h.service.List(),
		Loading: h.service.IsLoading(),
	})
}

// HandleGet returns one custom recipe
// @Summary Get custom recipe
// @Tags custom-recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} domain.CustomRecipe
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/custom-recipes/{id} [get]
func (h *CustomRecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.service.Get(chi.URLParam(r, ParamID))
	if err != nil {
		respondServiceError(w, r, "Get custom recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}

// HandleCreate saves a new custom recipe
// @Summary Create custom recipe
// @Tags custom-recipes
// @Accept json
// @Produce json
// @Param request body domain.RecipeForm true "Recipe form"
// @Success 201 {object} domain.CustomRecipe
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/custom-recipes [post]
func (h *CustomRecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	form, ok := decodeForm(w, r, "Create custom recipe")
	if !ok {
		return
	}
	recipe, err := h.service.Create(r.Context(), form)
	if err != nil {
		respondServiceError(w, r, "Create custom recipe", err)
		return
	}
	respondJSON(w, http.StatusCreated, recipe)
}

// HandleUpdate replaces a custom recipe by ID
// @Summary Update custom recipe
// @Tags custom-recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body domain.RecipeForm true "Recipe form"
// @Success 200 {object} domain.CustomRecipe
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/custom-recipes/{id} [put]
func (h *CustomRecipeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	form, ok := decodeForm(w, r, "Update custom recipe")
	if !ok {
		return
	}
	recipe, err := h.service.Update(r.Context(), chi.URLParam(r, ParamID), form)
	if err != nil {
		respondServiceError(w, r, "Update custom recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}

// HandleDelete removes a custom recipe by ID
// @Summary Delete custom recipe
// @Tags custom-recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/custom-recipes/{id} [delete]
func (h *CustomRecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, ParamID)); err != nil {
		respondServiceError(w, r, "Delete custom recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCustomRecipeDeleted})
}

// HandleSaveAt replaces the custom recipe at a position
// @Summary Edit custom recipe by position
// @Tags custom-recipes
// @Accept json
// @Produce json
// @Param index path int true "Position in the stored sequence"
// @Param request body domain.RecipeForm true "Recipe form"
// @Success 200 {object} domain.CustomRecipe
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/custom-recipes/index/{index} [put]
func (h *CustomRecipeHandler) HandleSaveAt(w http.ResponseWriter, r *http.Request) {
	index, ok := getIndexParam(r, w)
	if !ok {
		return
	}
	form, ok := decodeForm(w, r, "Edit custom recipe")
	if !ok {
		return
	}
	recipe, err := h.service.Save(r.Context(), form, &index)
	if err != nil {
		respondServiceError(w, r, "Edit custom recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}

// HandleDeleteAt removes the custom recipe at a position
// @Summary Delete custom recipe by position
// @Tags custom-recipes
// @Produce json
// @Param index path int true "Position in the list"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/custom-recipes/index/{index} [delete]
func (h *CustomRecipeHandler) HandleDeleteAt(w http.ResponseWriter, r *http.Request) {
	index, ok := getIndexParam(r, w)
	if !ok {
		return
	}
	if err := h.service.DeleteAt(r.Context(), index); err != nil {
		respondServiceError(w, r, "Delete custom recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCustomRecipeDeleted})
}

// HandleReload re-reads custom recipes from storage
// @Summary Reload custom recipes
// @Tags custom-recipes
// @Produce json
// @Success 200 {object} CustomRecipesResponse
// @Router /api/v1/custom-recipes/reload [post]
func (h *CustomRecipeHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	h.service.Load(r.Context())
	respondJSON(w, http.StatusOK, CustomRecipesResponse{
		Recipes: h.service.List(),
		Loading: h.service.IsLoading(),
	})
}
