package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/usecase"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// mockRecipeUsecase is a mock implementation of the RecipeUsecase interface.
type mockRecipeUsecase struct {
	SaveFunc           func(ctx context.Context, userID uint, in usecase.SaveRecipeInput) (*entity.Recipe, error)
	ListSavedFunc      func(ctx context.Context, userID uint) ([]entity.Recipe, error)
	DeleteFunc         func(ctx context.Context, userID, recipeID uint) error
	ToggleFavoriteFunc func(ctx context.Context, userID, recipeID uint) (*entity.Recipe, error)
}

func (m *mockRecipeUsecase) Save(ctx context.Context, userID uint, in usecase.SaveRecipeInput) (*entity.Recipe, error) {
	return m.SaveFunc(ctx, userID, in)
}

func (m *mockRecipeUsecase) ListSaved(ctx context.Context, userID uint) ([]entity.Recipe, error) {
	return m.ListSavedFunc(ctx, userID)
}

func (m *mockRecipeUsecase) Delete(ctx context.Context, userID, recipeID uint) error {
	return m.DeleteFunc(ctx, userID, recipeID)
}

func (m *mockRecipeUsecase) ToggleFavorite(ctx context.Context, userID, recipeID uint) (*entity.Recipe, error) {
	return m.ToggleFavoriteFunc(ctx, userID, recipeID)
}

// newRecipeRouter mounts the handler behind a stub that injects the given identity.
func newRecipeRouter(uc RecipeUsecase, userID uint) *gin.Engine {
	h := NewRecipeHandler(uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Next()
	})
	r.POST("/recipes/save", h.Save)
	r.GET("/recipes/saved", h.ListSaved)
	r.DELETE("/recipes/:id", h.Delete)
	r.PATCH("/recipes/:id/favorite", h.ToggleFavorite)
	return r
}

func perform(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRecipeHandler_Save(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: recipe is saved for the authenticated user", func(t *testing.T) {
		uc := &mockRecipeUsecase{
			SaveFunc: func(ctx context.Context, userID uint, in usecase.SaveRecipeInput) (*entity.Recipe, error) {
				return &entity.Recipe{ID: 42, UserID: userID, Title: in.Title, Ingredients: in.Ingredients}, nil
			},
		}
		router := newRecipeRouter(uc, 7)

		w := perform(t, router, http.MethodPost, "/recipes/save",
			gin.H{"title": "Curry Rice", "ingredients": []string{"rice"}})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Recipe saved successfully", body["message"])
		recipe := body["recipe"].(map[string]any)
		assert.Equal(t, float64(42), recipe["id"])
		assert.Equal(t, float64(7), recipe["userId"])
	})

	t.Run("failure: missing title", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{}, 7)

		w := perform(t, router, http.MethodPost, "/recipes/save", gin.H{"ingredients": []string{"rice"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Recipe title is required", decode(t, w)["message"])
	})
}

func TestRecipeHandler_ListSaved(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := &mockRecipeUsecase{
		ListSavedFunc: func(ctx context.Context, userID uint) ([]entity.Recipe, error) {
			return []entity.Recipe{
				{ID: 2, UserID: userID, Title: "newer"},
				{ID: 1, UserID: userID, Title: "older"},
			}, nil
		},
	}
	router := newRecipeRouter(uc, 7)

	w := perform(t, router, http.MethodGet, "/recipes/saved", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	recipes := body["recipes"].([]any)
	require.Len(t, recipes, 2)
	assert.Equal(t, "newer", recipes[0].(map[string]any)["title"])
}

func TestRecipeHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		path            string
		mockDeleteErr   error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "success: owner deletes recipe",
			path:            "/recipes/42",
			expectedStatus:  http.StatusOK,
			expectedMessage: "Recipe deleted successfully",
		},
		{
			name:            "failure: recipe not found",
			path:            "/recipes/42",
			mockDeleteErr:   usecase.ErrRecipeNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Recipe not found",
		},
		{
			name:            "failure: not the owner",
			path:            "/recipes/42",
			mockDeleteErr:   usecase.ErrNotRecipeOwner,
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "Not authorized to delete this recipe",
		},
		{
			name:            "failure: non-numeric id behaves like a missing recipe",
			path:            "/recipes/abc",
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Recipe not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			uc := &mockRecipeUsecase{
				DeleteFunc: func(ctx context.Context, userID, recipeID uint) error {
					called = true
					assert.Equal(t, uint(7), userID)
					assert.Equal(t, uint(42), recipeID)
					return tt.mockDeleteErr
				},
			}
			router := newRecipeRouter(uc, 7)

			w := perform(t, router, http.MethodDelete, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMessage, decode(t, w)["message"])
			if tt.path == "/recipes/abc" {
				assert.False(t, called, "usecase must not be reached for a malformed id")
			}
		})
	}
}

func TestRecipeHandler_ToggleFavorite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: message follows the resulting state", func(t *testing.T) {
		favorite := false
		uc := &mockRecipeUsecase{
			ToggleFavoriteFunc: func(ctx context.Context, userID, recipeID uint) (*entity.Recipe, error) {
				favorite = !favorite
				return &entity.Recipe{ID: recipeID, UserID: userID, Title: "Curry Rice", IsFavorite: favorite}, nil
			},
		}
		router := newRecipeRouter(uc, 7)

		first := perform(t, router, http.MethodPatch, "/recipes/42/favorite", nil)
		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, "Recipe added to favorites", decode(t, first)["message"])

		second := perform(t, router, http.MethodPatch, "/recipes/42/favorite", nil)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, "Recipe removed from favorites", decode(t, second)["message"])
	})

	t.Run("failure: not the owner", func(t *testing.T) {
		uc := &mockRecipeUsecase{
			ToggleFavoriteFunc: func(ctx context.Context, userID, recipeID uint) (*entity.Recipe, error) {
				return nil, usecase.ErrNotRecipeOwner
			},
		}
		router := newRecipeRouter(uc, 7)

		w := perform(t, router, http.MethodPatch, "/recipes/42/favorite", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Not authorized to update this recipe", decode(t, w)["message"])
	})
}
