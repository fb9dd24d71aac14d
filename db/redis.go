// db/redis.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/jackoske/AllGoGrand/logging"
	"github.com/jackoske/AllGoGrand/model"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

// Ping checks Redis liveness for the health endpoint.
func Ping(ctx context.Context) error {
	if RedisClient == nil {
		return fmt.Errorf("redis not initialized")
	}
	return RedisClient.Ping(ctx).Err()
}

// CacheWeather stores a normalized weather payload keyed by city. Only
// upstream payloads are ever cached; credential checks are always live.
func CacheWeather(ctx context.Context, city string, data *model.WeatherData, ttl time.Duration) error {
	weatherJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal weather data: %w", err)
	}

	if ttl == 0 {
		ttl = viper.GetDuration("redis.defaultCacheTTL")
	}
	key := weatherCacheKey(city)
	if err := RedisClient.Set(ctx, key, weatherJSON, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache weather data: %w", err)
	}

	logger.Debug("Weather data cached", zap.String("city", city))
	return nil
}

// GetCachedWeather returns the cached payload for city, or nil on a miss.
func GetCachedWeather(ctx context.Context, city string) (*model.WeatherData, error) {
	key := weatherCacheKey(city)
	weatherJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Weather cache miss", zap.String("city", city))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get weather data from cache: %w", err)
	}

	var data model.WeatherData
	if err := json.Unmarshal([]byte(weatherJSON), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached weather data: %w", err)
	}
	return &data, nil
}

// InvalidateWeather drops the cached payload for city.
func InvalidateWeather(ctx context.Context, city string) error {
	return RedisClient.Del(ctx, weatherCacheKey(city)).Err()
}

func weatherCacheKey(city string) string {
	return fmt.Sprintf("weather:%s", strings.ToLower(strings.TrimSpace(city)))
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
