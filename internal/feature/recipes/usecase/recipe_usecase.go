// Package usecase はrecipesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"recipe_backend/internal/feature/recipes/domain/entity"
)

// アナリティクスイベントのアクションタグ。
const (
	ActionFavorited   = "favorited"
	ActionUnfavorited = "unfavorited"
)

// RecipeRepository はレシピエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type RecipeRepository interface {
	// Create は新しいレシピをストレージに永続化します。
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByUser は指定ユーザーのレシピを作成日時の降順で取得します。
	FindByUser(ctx context.Context, userID uint) ([]entity.Recipe, error)

	// FindByID は指定されたIDに一致するレシピを取得します。
	// レシピが存在しない場合、ErrRecipeNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Recipe, error)

	// Delete は指定されたレシピを削除します。
	Delete(ctx context.Context, recipe *entity.Recipe) error

	// SetFavorite はお気に入りフラグを更新します。
	SetFavorite(ctx context.Context, recipe *entity.Recipe, favorite bool) error
}

// UserCounter はユーザーの保存レシピ数カウンタを更新します。
// auth/adaptersが実装します。
type UserCounter interface {
	IncrementRecipesSaved(ctx context.Context, userID uint, delta int) error
}

// EventRecorder はお気に入り操作のアナリティクスイベントを記録します。
// analytics/usecaseが実装します。
type EventRecorder interface {
	RecordFavoriteAction(ctx context.Context, userID uint, ingredients []string, recipeTitle, action string) error
}

// SaveRecipeInput はレシピ保存操作の入力を表します。
type SaveRecipeInput struct {
	Title        string
	Ingredients  []string
	Instructions []string
	CookTime     string
	Servings     string
	Description  string
	YouTubeLinks []entity.YouTubeLink
}

// recipeUsecase はレシピ操作のビジネスロジックを実装します。
type recipeUsecase struct {
	recipes  RecipeRepository
	counters UserCounter
	events   EventRecorder
}

// NewRecipeUsecase はrecipeUsecaseの新しいインスタンスを生成します。
func NewRecipeUsecase(recipes RecipeRepository, counters UserCounter, events EventRecorder) *recipeUsecase {
	return &recipeUsecase{
		recipes:  recipes,
		counters: counters,
		events:   events,
	}
}

// trimAll は各要素の前後空白を除去し、空になった要素を取り除きます。
func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// guard は所有権チェックを行います。存在確認が先、所有者比較が後です。
// 他人の実在レシピに対する操作はErrRecipeNotFoundではなくErrNotRecipeOwnerになります。
func (u *recipeUsecase) guard(ctx context.Context, userID, recipeID uint) (*entity.Recipe, error) {
	recipe, err := u.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrNotRecipeOwner
	}
	return recipe, nil
}

// Save は認証済みユーザーの新しいレシピを保存し、保存数カウンタを加算します。
func (u *recipeUsecase) Save(ctx context.Context, userID uint, in SaveRecipeInput) (*entity.Recipe, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	recipe := &entity.Recipe{
		UserID:       userID,
		Title:        title,
		Ingredients:  trimAll(in.Ingredients),
		Instructions: trimAll(in.Instructions),
		CookTime:     in.CookTime,
		Servings:     in.Servings,
		Description:  in.Description,
		YouTubeLinks: in.YouTubeLinks,
	}
	if err := u.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}

	// カウンタ更新はレシピ作成とアトミックではない
	if err := u.counters.IncrementRecipesSaved(ctx, userID, 1); err != nil {
		return nil, err
	}

	return recipe, nil
}

// ListSaved は認証済みユーザーの保存レシピを新しい順に返します。
func (u *recipeUsecase) ListSaved(ctx context.Context, userID uint) ([]entity.Recipe, error) {
	return u.recipes.FindByUser(ctx, userID)
}

// Delete は所有者のみが実行できるレシピ削除を行い、保存数カウンタを減算します。
func (u *recipeUsecase) Delete(ctx context.Context, userID, recipeID uint) error {
	recipe, err := u.guard(ctx, userID, recipeID)
	if err != nil {
		return err
	}

	if err := u.recipes.Delete(ctx, recipe); err != nil {
		return err
	}

	return u.counters.IncrementRecipesSaved(ctx, userID, -1)
}

// ToggleFavorite はお気に入りフラグを反転し、対応するアナリティクスイベントを記録します。
// 2回連続の実行で元の状態に戻り、逆のアクションタグを持つ2つのイベントが記録されます。
func (u *recipeUsecase) ToggleFavorite(ctx context.Context, userID, recipeID uint) (*entity.Recipe, error) {
	recipe, err := u.guard(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	favorite := !recipe.IsFavorite
	if err := u.recipes.SetFavorite(ctx, recipe, favorite); err != nil {
		return nil, err
	}
	recipe.IsFavorite = favorite

	action := ActionUnfavorited
	if favorite {
		action = ActionFavorited
	}
	if err := u.events.RecordFavoriteAction(ctx, userID, recipe.Ingredients, recipe.Title, action); err != nil {
		return nil, err
	}

	return recipe, nil
}
