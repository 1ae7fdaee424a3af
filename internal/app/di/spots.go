// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"spots_backend/internal/feature/spots/adapters"
	"spots_backend/internal/feature/spots/usecase"
	"spots_backend/internal/platform/cache"
)

// NewSpotRepository creates a SpotRepository implementation.
// If Redis is available, the Postgres repository is wrapped in the
// read-through feed cache. Otherwise the plain repository is returned.
func NewSpotRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.SpotRepository {
	repo := adapters.NewSpotPostgres(db)
	if rdb != nil {
		return cache.NewCachingSpotRepository(rdb, ttl, repo, "spots")
	}
	return repo
}
