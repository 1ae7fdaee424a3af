// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"spots_backend/internal/feature/spots/domain/entity"
	"spots_backend/internal/feature/spots/usecase"
)

// CachingSpotRepository decorates a SpotRepository with Redis caching of
// the public listing feed. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
// Every mutation invalidates the cached feed.
type CachingSpotRepository struct {
	inner     usecase.SpotRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SpotRepository = (*CachingSpotRepository)(nil)

// NewCachingSpotRepository decorates a SpotRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "spots".
func NewCachingSpotRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SpotRepository, namespace string) *CachingSpotRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "spots"
	}
	return &CachingSpotRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List retrieves the public feed, checking the cache first and falling
// back to the database.
func (c *CachingSpotRepository) List(ctx context.Context) ([]entity.Spot, error) {
	// Bypass the cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Spot
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// ListByHost always hits the database; per-host views are not cached.
func (c *CachingSpotRepository) ListByHost(ctx context.Context, hostID uint) ([]entity.Spot, error) {
	return c.inner.ListByHost(ctx, hostID)
}

// FindByID always hits the database; single rows are cheap to fetch.
func (c *CachingSpotRepository) FindByID(ctx context.Context, id uint) (*entity.Spot, error) {
	return c.inner.FindByID(ctx, id)
}

// Create inserts a spot and invalidates the cached feed.
func (c *CachingSpotRepository) Create(ctx context.Context, spot *entity.Spot) error {
	if err := c.inner.Create(ctx, spot); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update saves a spot and invalidates the cached feed.
func (c *CachingSpotRepository) Update(ctx context.Context, spot *entity.Spot) error {
	if err := c.inner.Update(ctx, spot); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes a spot and invalidates the cached feed.
func (c *CachingSpotRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// listKey generates the cache key for the public feed.
func (c *CachingSpotRepository) listKey() string {
	return fmt.Sprintf("%s:list", c.namespace)
}

// invalidate drops the cached feed. Best effort: a failed delete only
// means a stale feed until the TTL expires.
func (c *CachingSpotRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey()).Err()
}
