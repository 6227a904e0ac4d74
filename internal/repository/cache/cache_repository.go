package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain/repository"
)

// Snapshot cache keys.
const (
	keyRateSnapshot    = "snapshot:rate"
	keyWeatherSnapshot = "snapshot:weather"
	keySolarSnapshot   = "snapshot:solar"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCacheRepository wraps a Redis connection as the last-known-good snapshot
// store.
func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) GetRate(ctx context.Context) (*domain.RateSnapshot, error) {
	var snapshot domain.RateSnapshot
	ok, err := r.getJSON(ctx, keyRateSnapshot, &snapshot)
	if err != nil || !ok {
		return nil, err
	}
	return &snapshot, nil
}

func (r *cacheRepository) SetRate(ctx context.Context, snapshot *domain.RateSnapshot, ttl time.Duration) error {
	return r.setJSON(ctx, keyRateSnapshot, snapshot, ttl)
}

func (r *cacheRepository) GetWeather(ctx context.Context) (*domain.WeatherSnapshot, error) {
	var snapshot domain.WeatherSnapshot
	ok, err := r.getJSON(ctx, keyWeatherSnapshot, &snapshot)
	if err != nil || !ok {
		return nil, err
	}
	return &snapshot, nil
}

func (r *cacheRepository) SetWeather(ctx context.Context, snapshot *domain.WeatherSnapshot, ttl time.Duration) error {
	return r.setJSON(ctx, keyWeatherSnapshot, snapshot, ttl)
}

func (r *cacheRepository) GetSolar(ctx context.Context) (*domain.SolarSnapshot, error) {
	var snapshot domain.SolarSnapshot
	ok, err := r.getJSON(ctx, keySolarSnapshot, &snapshot)
	if err != nil || !ok {
		return nil, err
	}
	return &snapshot, nil
}

func (r *cacheRepository) SetSolar(ctx context.Context, snapshot *domain.SolarSnapshot, ttl time.Duration) error {
	return r.setJSON(ctx, keySolarSnapshot, snapshot, ttl)
}

// getJSON reports whether the key was present; a miss is not an error.
func (r *cacheRepository) getJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		r.logger.Error("Failed to unmarshal cached snapshot", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal snapshot", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.Set(ctx, key, data, ttl)
}
