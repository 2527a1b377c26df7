package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RecipeBox_Go/internal/customrecipe"
	"github.com/osse101/RecipeBox_Go/internal/domain"
)

var soupForm = domain.RecipeForm{Title: "Soup", Image: "img", Description: "Hot", Ingredients: "water; salt"}

func TestCustomRecipeHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*MockCustomRecipes)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name: "Created",
			body: soupForm,
			setupMocks: func(m *MockCustomRecipes) {
				m.On("Create", mock.Anything, soupForm).Return(domain.CustomRecipe{ID: "c-1", Title: "Soup"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   []string{`"id":"c-1"`},
		},
		{
			name: "Missing fields",
			body: domain.RecipeForm{Title: "Soup"},
			setupMocks: func(m *MockCustomRecipes) {
				m.On("Create", mock.Anything, domain.RecipeForm{Title: "Soup"}).Return(domain.CustomRecipe{},
					&customrecipe.ValidationError{Fields: map[string]string{"image": "required", "description": "required"}})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{ErrMsgFillAllFields, `"image":"required"`, `"description":"required"`},
		},
		{
			name: "Storage failure",
			body: soupForm,
			setupMocks: func(m *MockCustomRecipes) {
				m.On("Create", mock.Anything, soupForm).Return(domain.CustomRecipe{}, fmt.Errorf("%w: connection refused", domain.ErrStorage))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{ErrMsgSaveRecipeFailed},
		},
		{
			name:           "Malformed body",
			body:           "not json",
			setupMocks:     func(*MockCustomRecipes) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{ErrMsgInvalidRequest},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockCustomRecipes{}
			tt.setupMocks(m)

			w := httptest.NewRecorder()
			NewCustomRecipeHandler(m).HandleCreate(w, newJSONRequest(t, http.MethodPost, "/api/v1/custom-recipes", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, want := range tt.expectedBody {
				assert.Contains(t, w.Body.String(), want)
			}
			assert.NotContains(t, w.Body.String(), "connection refused")
			m.AssertExpectations(t)
		})
	}
}

func TestCustomRecipeHandler_RequestTooLarge(t *testing.T) {
	m := &MockCustomRecipes{}
	body := `{"title":"` + strings.Repeat("x", 512) + `"}`
	req := newJSONRequest(t, http.MethodPost, "/api/v1/custom-recipes", body)
	w := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(w, req.Body, 64)

	NewCustomRecipeHandler(m).HandleCreate(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomRecipeHandler_SaveAt(t *testing.T) {
	t.Run("edits position", func(t *testing.T) {
		m := &MockCustomRecipes{}
		index := 1
		m.On("Save", mock.Anything, soupForm, &index).Return(domain.CustomRecipe{ID: "c-2", Title: "Soup"}, nil)

		w := httptest.NewRecorder()
		req := withURLParam(newJSONRequest(t, http.MethodPut, "/api/v1/custom-recipes/index/1", soupForm), ParamIndex, "1")
		NewCustomRecipeHandler(m).HandleSaveAt(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		m.AssertExpectations(t)
	})

	t.Run("non-numeric index", func(t *testing.T) {
		m := &MockCustomRecipes{}
		w := httptest.NewRecorder()
		req := withURLParam(newJSONRequest(t, http.MethodPut, "/api/v1/custom-recipes/index/abc", soupForm), ParamIndex, "abc")
		NewCustomRecipeHandler(m).HandleSaveAt(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidIndex)
		m.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("out of range", func(t *testing.T) {
		m := &MockCustomRecipes{}
		m.On("Save", mock.Anything, soupForm, mock.Anything).
			Return(domain.CustomRecipe{}, fmt.Errorf("%w: 9 of 2", domain.ErrIndexOutOfRange))

		w := httptest.NewRecorder()
		req := withURLParam(newJSONRequest(t, http.MethodPut, "/api/v1/custom-recipes/index/9", soupForm), ParamIndex, "9")
		NewCustomRecipeHandler(m).HandleSaveAt(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgIndexOutOfRange)
	})
}

func TestCustomRecipeHandler_Delete(t *testing.T) {
	m := &MockCustomRecipes{}
	m.On("Delete", mock.Anything, "c-1").Return(nil)
	m.On("Delete", mock.Anything, "missing").Return(fmt.Errorf("%w: missing", domain.ErrRecipeNotFound))
	m.On("DeleteAt", mock.Anything, 0).Return(nil)
	h := NewCustomRecipeHandler(m)

	w := httptest.NewRecorder()
	h.HandleDelete(w, withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/custom-recipes/c-1", nil), ParamID, "c-1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgCustomRecipeDeleted)

	w = httptest.NewRecorder()
	h.HandleDelete(w, withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/custom-recipes/missing", nil), ParamID, "missing"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	h.HandleDeleteAt(w, withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/custom-recipes/index/0", nil), ParamIndex, "0"))
	assert.Equal(t, http.StatusOK, w.Code)
	m.AssertExpectations(t)
}

func TestCustomRecipeHandler_ListGetUpdate(t *testing.T) {
	m := &MockCustomRecipes{}
	recipe := domain.CustomRecipe{ID: "c-1", Title: "Soup"}
	m.On("List").Return([]domain.CustomRecipe{recipe})
	m.On("IsLoading").Return(true)
	m.On("Get", "c-1").Return(recipe, nil)
	m.On("Update", mock.Anything, "c-1", soupForm).Return(recipe, nil)
	h := NewCustomRecipeHandler(m)

	w := httptest.NewRecorder()
	h.HandleList(w, httptest.NewRequest(http.MethodGet, "/api/v1/custom-recipes", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list CustomRecipesResponse
	decodeBody(t, w, &list)
	assert.True(t, list.Loading)
	assert.Len(t, list.Recipes, 1)

	w = httptest.NewRecorder()
	h.HandleGet(w, withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/custom-recipes/c-1", nil), ParamID, "c-1"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.HandleUpdate(w, withURLParam(newJSONRequest(t, http.MethodPut, "/api/v1/custom-recipes/c-1", soupForm), ParamID, "c-1"))
	assert.Equal(t, http.StatusOK, w.Code)
	m.AssertExpectations(t)
}
