package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"recipe_backend/internal/app/config"
	"recipe_backend/internal/app/router"
	analyticsadapters "recipe_backend/internal/feature/analytics/adapters"
	analyticshandler "recipe_backend/internal/feature/analytics/transport/handler"
	analyticsusecase "recipe_backend/internal/feature/analytics/usecase"
	authadapters "recipe_backend/internal/feature/auth/adapters"
	authhandler "recipe_backend/internal/feature/auth/transport/handler"
	authusecase "recipe_backend/internal/feature/auth/usecase"
	recipeadapters "recipe_backend/internal/feature/recipes/adapters"
	recipehandler "recipe_backend/internal/feature/recipes/transport/handler"
	recipeusecase "recipe_backend/internal/feature/recipes/usecase"
	"recipe_backend/internal/platform/cache"
	infradb "recipe_backend/internal/platform/db"
	jwtmw "recipe_backend/internal/platform/jwt"
	infraredis "recipe_backend/internal/platform/redis"
)

func main() {
	// 設定（JWT_SECRET未設定は起動時に致命的エラー）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg.DB)

	// Redis（任意。未設定・接続不可ならキャッシュなしで稼働する）
	var rdb *redisv9.Client
	if cfg.Redis.Host == "" {
		log.Println("[INFO] Redis not configured. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	recipeRepo := recipeadapters.NewRecipeRepository(db)
	eventRepo := analyticsadapters.NewEventRepository(db)

	// Redisキャッシュでラップ
	cachedRecipeRepo := cache.NewCachingRecipeRepository(rdb, cfg.CacheTTL, recipeRepo, "recipes")

	// Token
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, jwtmw.TokenLifetime)
	tokenVerifier := jwtmw.NewVerifier(cfg.JWTSecret)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	analyticsUC := analyticsusecase.NewAnalyticsUsecase(eventRepo, recipeRepo, userRepo)
	recipeUC := recipeusecase.NewRecipeUsecase(cachedRecipeRepo, userRepo, analyticsUC)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	recipeH := recipehandler.NewRecipeHandler(recipeUC)
	analyticsH := analyticshandler.NewAnalyticsHandler(analyticsUC)

	// ルータ生成
	router := router.NewRouter(cfg, authH, recipeH, analyticsH, jwtmw.AuthRequired(tokenVerifier, userRepo))

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
