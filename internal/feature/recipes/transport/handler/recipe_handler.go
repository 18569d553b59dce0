// Package handler はrecipesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/transport/http/dto"
	"recipe_backend/internal/feature/recipes/usecase"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// RecipeUsecase はレシピ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type RecipeUsecase interface {
	Save(ctx context.Context, userID uint, in usecase.SaveRecipeInput) (*entity.Recipe, error)
	ListSaved(ctx context.Context, userID uint) ([]entity.Recipe, error)
	Delete(ctx context.Context, userID, recipeID uint) error
	ToggleFavorite(ctx context.Context, userID, recipeID uint) (*entity.Recipe, error)
}

// RecipeHandler はレシピのHTTPリクエストを処理します。
type RecipeHandler struct {
	uc RecipeUsecase
}

// NewRecipeHandler は指定されたusecaseでRecipeHandlerの新しいインスタンスを生成します。
func NewRecipeHandler(uc RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// toRecipePayload はドメインエンティティを外部向けペイロードに変換します。
func toRecipePayload(r *entity.Recipe) api.Recipe {
	links := make([]api.YouTubeLink, 0, len(r.YouTubeLinks))
	for _, l := range r.YouTubeLinks {
		links = append(links, api.YouTubeLink{Title: l.Title, URL: l.URL, Thumbnail: l.Thumbnail})
	}
	return api.Recipe{
		ID:           r.ID,
		UserID:       r.UserID,
		Title:        r.Title,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Description:  r.Description,
		IsFavorite:   r.IsFavorite,
		YouTubeLinks: links,
		CreatedAt:    r.CreatedAt,
	}
}

// recipeID はパスパラメータからレシピIDを取り出します。
// 数値でないIDは存在しないレシピとして扱います。
func recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// Save はレシピ保存APIエンドポイントを処理します。
// - タイトル未指定時は400を返却
// - 成功時はレシピ付きで201を返却
func (h *RecipeHandler) Save(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
		return
	}

	var req dto.SaveRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("save recipe validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Recipe title is required"})
		return
	}

	links := make([]entity.YouTubeLink, 0, len(req.YouTubeLinks))
	for _, l := range req.YouTubeLinks {
		links = append(links, entity.YouTubeLink{Title: l.Title, URL: l.URL, Thumbnail: l.Thumbnail})
	}

	recipe, err := h.uc.Save(c.Request.Context(), userID, usecase.SaveRecipeInput{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Description:  req.Description,
		YouTubeLinks: links,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Recipe title is required"})
			return
		}
		slog.Error("save recipe failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to save recipe"})
		return
	}

	slog.Info("recipe saved", "recipe_id", recipe.ID, "user_id", userID)
	c.JSON(http.StatusCreated, api.RecipeResponse{
		Success: true,
		Message: "Recipe saved successfully",
		Recipe:  toRecipePayload(recipe),
	})
}

// ListSaved は認証済みユーザーの保存レシピ一覧を新しい順で返します。
func (h *RecipeHandler) ListSaved(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
		return
	}

	recipes, err := h.uc.ListSaved(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list recipes failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to fetch recipes"})
		return
	}

	out := make([]api.Recipe, 0, len(recipes))
	for i := range recipes {
		out = append(out, toRecipePayload(&recipes[i]))
	}
	c.JSON(http.StatusOK, api.RecipeListResponse{Success: true, Recipes: out})
}

// Delete はレシピ削除APIエンドポイントを処理します。
// - レシピが存在しない場合は404を返却
// - 所有者でない場合は403を返却
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
		return
	}
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Recipe not found"})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Recipe not found"})
		case errors.Is(err, usecase.ErrNotRecipeOwner):
			slog.Warn("delete denied", "recipe_id", id, "user_id", userID)
			c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Not authorized to delete this recipe"})
		default:
			slog.Error("delete recipe failed", "error", err, "recipe_id", id, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to delete recipe"})
		}
		return
	}

	slog.Info("recipe deleted", "recipe_id", id, "user_id", userID)
	c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Recipe deleted successfully"})
}

// ToggleFavorite はお気に入り切り替えAPIエンドポイントを処理します。
// 切り替えに対応するアナリティクスイベントがusecase側で記録されます。
func (h *RecipeHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
		return
	}
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Recipe not found"})
		return
	}

	recipe, err := h.uc.ToggleFavorite(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Recipe not found"})
		case errors.Is(err, usecase.ErrNotRecipeOwner):
			slog.Warn("favorite toggle denied", "recipe_id", id, "user_id", userID)
			c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Not authorized to update this recipe"})
		default:
			slog.Error("favorite toggle failed", "error", err, "recipe_id", id, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to toggle favorite"})
		}
		return
	}

	message := "Recipe removed from favorites"
	if recipe.IsFavorite {
		message = "Recipe added to favorites"
	}
	c.JSON(http.StatusOK, api.RecipeResponse{
		Success: true,
		Message: message,
		Recipe:  toRecipePayload(recipe),
	})
}
