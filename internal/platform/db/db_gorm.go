package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recipe_backend/internal/app/config"
	analyticsadapters "recipe_backend/internal/feature/analytics/adapters"
	authentity "recipe_backend/internal/feature/auth/domain/entity"
	recipeadapters "recipe_backend/internal/feature/recipes/adapters"
)

// OpenDB opens the Postgres connection with a bounded retry loop and
// optionally runs migrations. A database that stays unreachable past the
// deadline is fatal.
func OpenDB(cfg config.DBConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError maps driver unique-violation errors to gorm.ErrDuplicatedKey
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, Recipe, AnalyticsEvent）
		if err := db.AutoMigrate(
			&authentity.User{},
			&recipeadapters.RecipeModel{},
			&analyticsadapters.EventModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
