// Package handler はanalyticsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
	"recipe_backend/internal/feature/analytics/domain/entity"
	"recipe_backend/internal/feature/analytics/transport/http/dto"
	"recipe_backend/internal/feature/analytics/usecase"
	authusecase "recipe_backend/internal/feature/auth/usecase"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// AnalyticsUsecase はアナリティクス操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalyticsUsecase interface {
	LogGeneration(ctx context.Context, userID uint, ingredients []string, recipeTitle string) error
	ListEvents(ctx context.Context, userID uint) ([]entity.Event, error)
	DashboardStats(ctx context.Context, userID uint) (usecase.Stats, error)
}

// AnalyticsHandler はアナリティクスのHTTPリクエストを処理します。
type AnalyticsHandler struct {
	uc AnalyticsUsecase
}

// NewAnalyticsHandler は指定されたusecaseでAnalyticsHandlerの新しいインスタンスを生成します。
func NewAnalyticsHandler(uc AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// LogGeneration は生成イベント記録APIエンドポイントを処理します。
func (h *AnalyticsHandler) LogGeneration(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
		return
	}

	var req dto.LogGenerationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("log generation validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid request"})
		return
	}

	if err := h.uc.LogGeneration(c.Request.Context(), userID, req.Ingredients, req.RecipeTitle); err != nil {
		slog.Error("log generation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to log"})
		return
	}

	c.JSON(http.StatusCreated, api.MessageResponse{Success: true, Message: "Generation logged"})
}

// ListEvents はイベント一覧APIエンドポイントを処理します。新しい順で返します。
func (h *AnalyticsHandler) ListEvents(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
		return
	}

	events, err := h.uc.ListEvents(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list analytics failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to fetch analytics"})
		return
	}

	out := make([]api.AnalyticsEvent, 0, len(events))
	for _, e := range events {
		out = append(out, api.AnalyticsEvent{
			ID:          e.ID,
			UserID:      e.UserID,
			Ingredients: e.Ingredients,
			RecipeTitle: e.RecipeTitle,
			Action:      e.Action,
			GeneratedAt: e.GeneratedAt,
		})
	}
	c.JSON(http.StatusOK, api.AnalyticsResponse{Success: true, Analytics: out})
}

// DashboardStats はダッシュボード統計APIエンドポイントを処理します。
func (h *AnalyticsHandler) DashboardStats(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
		return
	}

	stats, err := h.uc.DashboardStats(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
			return
		}
		slog.Error("dashboard stats failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, api.StatsResponse{
		Success: true,
		Stats: api.DashboardStats{
			TotalRecipes:     stats.TotalRecipes,
			TotalGenerations: stats.TotalGenerations,
			RecipesSaved:     stats.RecipesSaved,
			RecipesGenerated: stats.RecipesGenerated,
		},
	})
}
