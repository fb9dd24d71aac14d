// util/cache_service.go

package util

import (
	"context"
	"time"

	"github.com/jackoske/AllGoGrand/db"
	"github.com/jackoske/AllGoGrand/model"
)

// CacheService is the Redis-backed weather payload cache.
type CacheService struct {
	ttl time.Duration
}

func NewCacheService(ttl time.Duration) *CacheService {
	return &CacheService{ttl: ttl}
}

func (c *CacheService) GetWeather(ctx context.Context, city string) (*model.WeatherData, error) {
	return db.GetCachedWeather(ctx, city)
}

func (c *CacheService) SetWeather(ctx context.Context, city string, data *model.WeatherData) error {
	return db.CacheWeather(ctx, city, data, c.ttl)
}
