package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

const (
	cacheTTL        = 5 * time.Minute
	categoryListKey = "categories:all"
	categoryKeyStem = "category:"
)

// CategoryCache is a read-through cache for category lookups backed by
// Redis. Every method is best-effort: backend failures are logged and
// treated as misses so a degraded cache never fails a request.
type CategoryCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewCategoryCache creates a CategoryCache wrapping the given Redis client.
func NewCategoryCache(client *redis.Client, log zerolog.Logger) *CategoryCache {
	return &CategoryCache{client: client, log: log}
}

func (c *CategoryCache) Get(ctx context.Context, id uuid.UUID) (*domain.Category, bool) {
	raw, err := c.client.Get(ctx, categoryKeyStem+id.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("category cache get failed")
		}
		return nil, false
	}

	var category domain.Category
	if err := json.Unmarshal(raw, &category); err != nil {
		return nil, false
	}
	return &category, true
}

func (c *CategoryCache) Set(ctx context.Context, category *domain.Category) {
	raw, err := json.Marshal(category)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, categoryKeyStem+category.ID.String(), raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("category cache set failed")
	}
}

func (c *CategoryCache) GetList(ctx context.Context) ([]*domain.Category, bool) {
	raw, err := c.client.Get(ctx, categoryListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("category cache list get failed")
		}
		return nil, false
	}

	var categories []*domain.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, false
	}
	return categories, true
}

func (c *CategoryCache) SetList(ctx context.Context, categories []*domain.Category) {
	raw, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, categoryListKey, raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("category cache list set failed")
	}
}

// Invalidate drops the entry for id and the cached list.
func (c *CategoryCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, categoryKeyStem+id.String(), categoryListKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("category cache invalidate failed")
	}
}
