// Package usecase はanalyticsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"recipe_backend/internal/feature/analytics/domain/entity"
)

// EventRepository はアナリティクスイベントの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type EventRepository interface {
	// Create は新しいイベントをストレージに永続化します。
	Create(ctx context.Context, event *entity.Event) error

	// FindByUser は指定ユーザーのイベントを生成日時の降順で取得します。
	FindByUser(ctx context.Context, userID uint) ([]entity.Event, error)

	// CountByUser は指定ユーザーのイベント総数を返します。
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

// RecipeCounter はユーザーの保存レシピ数を数えます。
// recipes/adaptersが実装します。
type RecipeCounter interface {
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

// UserCounters はユーザーの非正規化カウンタへのアクセスを抽象化します。
// auth/adaptersが実装します。
type UserCounters interface {
	IncrementRecipesGenerated(ctx context.Context, userID uint, delta int) error
	GetCounters(ctx context.Context, userID uint) (recipesSaved, recipesGenerated int, err error)
}

// Stats はダッシュボード統計を表します。
// ライブ集計値と非正規化カウンタを並べて返すため、両者のずれが観測できます。
type Stats struct {
	TotalRecipes     int64
	TotalGenerations int64
	RecipesSaved     int
	RecipesGenerated int
}

// analyticsUsecase はアナリティクス操作のビジネスロジックを実装します。
type analyticsUsecase struct {
	events   EventRepository
	recipes  RecipeCounter
	counters UserCounters
}

// NewAnalyticsUsecase はanalyticsUsecaseの新しいインスタンスを生成します。
func NewAnalyticsUsecase(events EventRepository, recipes RecipeCounter, counters UserCounters) *analyticsUsecase {
	return &analyticsUsecase{
		events:   events,
		recipes:  recipes,
		counters: counters,
	}
}

// LogGeneration は生成イベントを追記し、生成数カウンタを加算します。
func (u *analyticsUsecase) LogGeneration(ctx context.Context, userID uint, ingredients []string, recipeTitle string) error {
	event := &entity.Event{
		UserID:      userID,
		Ingredients: ingredients,
		RecipeTitle: recipeTitle,
		GeneratedAt: time.Now(),
	}
	if err := u.events.Create(ctx, event); err != nil {
		return err
	}

	// カウンタ更新はイベント追記とアトミックではない
	return u.counters.IncrementRecipesGenerated(ctx, userID, 1)
}

// RecordFavoriteAction はお気に入り操作のイベントを追記します。
// 生成数カウンタは加算しません。recipes/usecaseのEventRecorderを実装します。
func (u *analyticsUsecase) RecordFavoriteAction(ctx context.Context, userID uint, ingredients []string, recipeTitle, action string) error {
	return u.events.Create(ctx, &entity.Event{
		UserID:      userID,
		Ingredients: ingredients,
		RecipeTitle: recipeTitle,
		Action:      action,
		GeneratedAt: time.Now(),
	})
}

// ListEvents は認証済みユーザーのイベントを新しい順に返します。
func (u *analyticsUsecase) ListEvents(ctx context.Context, userID uint) ([]entity.Event, error) {
	return u.events.FindByUser(ctx, userID)
}

// DashboardStats はライブ集計値と非正規化カウンタを組み合わせた統計を返します。
func (u *analyticsUsecase) DashboardStats(ctx context.Context, userID uint) (Stats, error) {
	totalRecipes, err := u.recipes.CountByUser(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	totalGenerations, err := u.events.CountByUser(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	saved, generated, err := u.counters.GetCounters(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		TotalRecipes:     totalRecipes,
		TotalGenerations: totalGenerations,
		RecipesSaved:     saved,
		RecipesGenerated: generated,
	}, nil
}
