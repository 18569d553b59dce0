// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/usecase"
)

// CachingRecipeRepository decorates a RecipeRepository with Redis caching of
// the per-user saved-recipe listing. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
// Mutations invalidate the owning user's cached listing.
type CachingRecipeRepository struct {
	inner     usecase.RecipeRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingRecipeRepository decorates a RecipeRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "recipes".
func NewCachingRecipeRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RecipeRepository, namespace string) *CachingRecipeRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "recipes"
	}
	return &CachingRecipeRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

var _ usecase.RecipeRepository = (*CachingRecipeRepository)(nil)

// FindByUser retrieves a user's recipes, checking cache first then falling
// back to the database.
func (c *CachingRecipeRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Recipe, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByUser(ctx, userID)
	}

	key := c.cacheKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Recipe
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create inserts a recipe and invalidates the owner's cached listing.
func (c *CachingRecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	if err := c.inner.Create(ctx, recipe); err != nil {
		return err
	}
	c.invalidate(ctx, recipe.UserID)
	return nil
}

// Delete removes a recipe and invalidates the owner's cached listing.
func (c *CachingRecipeRepository) Delete(ctx context.Context, recipe *entity.Recipe) error {
	if err := c.inner.Delete(ctx, recipe); err != nil {
		return err
	}
	c.invalidate(ctx, recipe.UserID)
	return nil
}

// SetFavorite updates the favorite flag and invalidates the owner's cached listing.
func (c *CachingRecipeRepository) SetFavorite(ctx context.Context, recipe *entity.Recipe, favorite bool) error {
	if err := c.inner.SetFavorite(ctx, recipe, favorite); err != nil {
		return err
	}
	c.invalidate(ctx, recipe.UserID)
	return nil
}

// FindByID is a passthrough; single-recipe reads precede mutations and are
// not worth caching.
func (c *CachingRecipeRepository) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	return c.inner.FindByID(ctx, id)
}

// invalidate drops the cached listing for a user (best effort).
func (c *CachingRecipeRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(userID)).Err()
}

// cacheKey generates the cache key for a user's saved-recipe listing.
func (c *CachingRecipeRepository) cacheKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, userID)
}
