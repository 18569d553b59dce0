package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"recipe_backend/internal/feature/analytics/domain/entity"
	"recipe_backend/internal/feature/analytics/usecase"
)

type eventPostgres struct {
	db *gorm.DB
}

var _ usecase.EventRepository = (*eventPostgres)(nil)

func NewEventRepository(db *gorm.DB) *eventPostgres {
	return &eventPostgres{db: db}
}

// EventModel はアナリティクスイベントの永続化モデルです。
type EventModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	Ingredients []string  `gorm:"serializer:json"`
	RecipeTitle string    `gorm:"size:255"`
	Action      string    `gorm:"size:32"`
	GeneratedAt time.Time `gorm:"index;not null"`
	CreatedAt   time.Time
}

func (EventModel) TableName() string {
	return "analytics_events"
}

func toModel(e *entity.Event) EventModel {
	return EventModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Ingredients: e.Ingredients,
		RecipeTitle: e.RecipeTitle,
		Action:      e.Action,
		GeneratedAt: e.GeneratedAt,
	}
}

func toEntity(m EventModel) entity.Event {
	return entity.Event{
		ID:          m.ID,
		UserID:      m.UserID,
		Ingredients: m.Ingredients,
		RecipeTitle: m.RecipeTitle,
		Action:      m.Action,
		GeneratedAt: m.GeneratedAt,
		CreatedAt:   m.CreatedAt,
	}
}

// Create はイベントをデータベースに追記します。
func (r *eventPostgres) Create(ctx context.Context, e *entity.Event) error {
	m := toModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	e.ID = m.ID
	e.CreatedAt = m.CreatedAt
	return nil
}

// FindByUser は指定ユーザーのイベントを生成日時の降順で取得します。
// 生成日時が同じ場合はIDの降順で安定した順序を保証します。
func (r *eventPostgres) FindByUser(ctx context.Context, userID uint) ([]entity.Event, error) {
	var rows []EventModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// CountByUser は指定ユーザーのイベント総数を返します。
func (r *eventPostgres) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&EventModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
