package repository

import (
	"context"
	"time"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
)

// CacheRepository is the optional last-known-good store for external-data
// snapshots. It only improves the fallback values seeded at startup; every
// read path tolerates a nil repository.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	GetRate(ctx context.Context) (*domain.RateSnapshot, error)
	SetRate(ctx context.Context, snapshot *domain.RateSnapshot, ttl time.Duration) error

	GetWeather(ctx context.Context) (*domain.WeatherSnapshot, error)
	SetWeather(ctx context.Context, snapshot *domain.WeatherSnapshot, ttl time.Duration) error

	GetSolar(ctx context.Context) (*domain.SolarSnapshot, error)
	SetSolar(ctx context.Context, snapshot *domain.SolarSnapshot, ttl time.Duration) error
}
