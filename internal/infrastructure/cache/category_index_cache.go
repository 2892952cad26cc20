package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/tweakwise-api/internal/application/render"
	"github.com/jhoicas/tweakwise-api/pkg/logger"
)

const categoryIndexPrefix = "tweakwise:category-index:"

var _ render.CategoryIndexer = (*CategoryIndexCache)(nil)

// kvStore subconjunto de redis.Cmdable que usa la caché.
type kvStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CategoryIndexCache decora un CategoryIndexer guardando el índice por (raíz, dominio) con TTL.
// Redis caído no rompe el render: se registra y se calcula el índice sin caché.
type CategoryIndexCache struct {
	store kvStore
	next  render.CategoryIndexer
	ttl   time.Duration
	log   *logger.Logger
}

// NewCategoryIndexCache construye el decorador.
func NewCategoryIndexCache(store kvStore, next render.CategoryIndexer, ttl time.Duration, log *logger.Logger) *CategoryIndexCache {
	return &CategoryIndexCache{store: store, next: next, ttl: ttl, log: log}
}

// CategoryIndexKey clave Redis del índice.
func CategoryIndexKey(rootCategoryID, domainID string) string {
	return categoryIndexPrefix + rootCategoryID + ":" + domainID
}

// Index implementa render.CategoryIndexer.
func (c *CategoryIndexCache) Index(ctx context.Context, rootCategoryID, domainID string) (map[string]string, error) {
	key := CategoryIndexKey(rootCategoryID, domainID)

	raw, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var index map[string]string
		if jsonErr := json.Unmarshal(raw, &index); jsonErr == nil {
			return index, nil
		}
		c.log.Warn().Str("key", key).Msg("índice de categorías corrupto en caché")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("lectura de caché de categorías")
	}

	index, err := c.next.Index(ctx, rootCategoryID, domainID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(index)
	if err != nil {
		return index, nil
	}
	if err := c.store.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("escritura de caché de categorías")
	}
	return index, nil
}
