package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
	"recipe_backend/internal/app/config"
	analyticshandler "recipe_backend/internal/feature/analytics/transport/handler"
	authhandler "recipe_backend/internal/feature/auth/transport/handler"
	recipehandler "recipe_backend/internal/feature/recipes/transport/handler"
	"recipe_backend/internal/platform/http/handler"
	"recipe_backend/internal/platform/http/middleware"
)

func NewRouter(cfg *config.Config, authH *authhandler.AuthHandler, recipeH *recipehandler.RecipeHandler,
	analyticsH *analyticshandler.AnalyticsHandler, authRequired gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.Recovery())

	// CORS: フロントエンドのオリジンのみ許可（クッキー/認証ヘッダー付き）
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// 認証不要
	// 導通確認用
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)

	auth := r.Group("/auth")
	{
		// 新規ユーザー登録
		auth.POST("/signup", authH.Signup)
		// ログイン（トークン発行）
		auth.POST("/signin", authH.Signin)

		// 認証必須のプロフィール操作
		profile := auth.Group("/")
		profile.Use(authRequired)
		{
			profile.GET("/profile", authH.GetProfile)
			profile.PUT("/profile", authH.UpdateProfile)
		}
	}

	// 認証必須のルート
	// リクエストヘッダーにBearerトークンが必要になる
	recipes := r.Group("/recipes")
	recipes.Use(authRequired)
	{
		recipes.POST("/save", recipeH.Save)
		recipes.GET("/saved", recipeH.ListSaved)
		recipes.DELETE("/:id", recipeH.Delete)
		recipes.PATCH("/:id/favorite", recipeH.ToggleFavorite)
		recipes.POST("/log", analyticsH.LogGeneration)
		recipes.GET("/analytics", analyticsH.ListEvents)
		recipes.GET("/stats", analyticsH.DashboardStats)
	}

	// 未定義ルートも統一エンベロープで404を返す
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Route not found"})
	})

	return r
}
