package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/usecase"
)

type recipePostgres struct {
	db *gorm.DB
}

var _ usecase.RecipeRepository = (*recipePostgres)(nil)

func NewRecipeRepository(db *gorm.DB) *recipePostgres {
	return &recipePostgres{db: db}
}

// RecipeModel はレシピの永続化モデルです。
// 順序付きリストはJSONシリアライザでテキスト列に格納します。
type RecipeModel struct {
	ID           uint                 `gorm:"primaryKey"`
	UserID       uint                 `gorm:"index;not null"`
	Title        string               `gorm:"size:255;not null"`
	Ingredients  []string             `gorm:"serializer:json"`
	Instructions []string             `gorm:"serializer:json"`
	CookTime     string               `gorm:"size:64"`
	Servings     string               `gorm:"size:64"`
	Description  string               `gorm:"type:text"`
	IsFavorite   bool                 `gorm:"not null;default:false"`
	YouTubeLinks []entity.YouTubeLink `gorm:"serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func toModel(e *entity.Recipe) RecipeModel {
	return RecipeModel{
		ID:           e.ID,
		UserID:       e.UserID,
		Title:        e.Title,
		Ingredients:  e.Ingredients,
		Instructions: e.Instructions,
		CookTime:     e.CookTime,
		Servings:     e.Servings,
		Description:  e.Description,
		IsFavorite:   e.IsFavorite,
		YouTubeLinks: e.YouTubeLinks,
	}
}

func toEntity(m RecipeModel) entity.Recipe {
	return entity.Recipe{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Ingredients:  m.Ingredients,
		Instructions: m.Instructions,
		CookTime:     m.CookTime,
		Servings:     m.Servings,
		Description:  m.Description,
		IsFavorite:   m.IsFavorite,
		YouTubeLinks: m.YouTubeLinks,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// Create はレシピをデータベースに追加し、採番されたIDと作成日時をエンティティに反映します。
func (r *recipePostgres) Create(ctx context.Context, e *entity.Recipe) error {
	m := toModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	e.ID = m.ID
	e.CreatedAt = m.CreatedAt
	e.UpdatedAt = m.UpdatedAt
	return nil
}

// FindByUser は指定ユーザーのレシピを作成日時の降順で取得します。
// 作成日時が同じ場合はIDの降順で安定した順序を保証します。
func (r *recipePostgres) FindByUser(ctx context.Context, userID uint) ([]entity.Recipe, error) {
	var rows []RecipeModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Recipe, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// FindByID はIDでレシピを取得します。
// レシピが存在しない場合、usecase.ErrRecipeNotFoundを返します。
func (r *recipePostgres) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	var m RecipeModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRecipeNotFound
		}
		return nil, err
	}
	e := toEntity(m)
	return &e, nil
}

// Delete はレシピを削除します。
func (r *recipePostgres) Delete(ctx context.Context, e *entity.Recipe) error {
	return r.db.WithContext(ctx).Delete(&RecipeModel{}, e.ID).Error
}

// SetFavorite はお気に入りフラグを更新します。
func (r *recipePostgres) SetFavorite(ctx context.Context, e *entity.Recipe, favorite bool) error {
	return r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("id = ?", e.ID).
		Update("is_favorite", favorite).Error
}

// CountByUser は指定ユーザーの保存レシピ数を返します。
// ダッシュボード統計で使用されます。
func (r *recipePostgres) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
