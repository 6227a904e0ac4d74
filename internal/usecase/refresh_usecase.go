package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/config"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain/repository"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/state"
)

// RefreshUseCase implements the external-data policy: each source is fetched
// once, best effort, at startup. Success overwrites the AppState snapshot and
// the last-known-good cache when one is wired; failure logs at warn and the
// panel keeps its prior or fallback value. Nothing is retried and nothing is
// surfaced to clients as an error.
type RefreshUseCase struct {
	rateRepo    repository.RateRepository
	weatherRepo repository.WeatherRepository
	cacheRepo   repository.CacheRepository
	appState    *state.AppState
	exchangeCfg *config.ExchangeConfig
	weatherCfg  *config.WeatherConfig
	logger      *zap.Logger
	now         func() time.Time
}

func NewRefreshUseCase(
	rateRepo repository.RateRepository,
	weatherRepo repository.WeatherRepository,
	cacheRepo repository.CacheRepository,
	appState *state.AppState,
	exchangeCfg *config.ExchangeConfig,
	weatherCfg *config.WeatherConfig,
	logger *zap.Logger,
) *RefreshUseCase {
	return &RefreshUseCase{
		rateRepo:    rateRepo,
		weatherRepo: weatherRepo,
		cacheRepo:   cacheRepo,
		appState:    appState,
		exchangeCfg: exchangeCfg,
		weatherCfg:  weatherCfg,
		logger:      logger,
		now:         time.Now,
	}
}

// SeedFromCache loads last-known-good snapshots before the live fetches run.
// Without a cache (or on any cache error) the config fallbacks stay in place.
func (uc *RefreshUseCase) SeedFromCache(ctx context.Context) {
	if uc.cacheRepo == nil {
		return
	}

	if rate, err := uc.cacheRepo.GetRate(ctx); err == nil && rate != nil {
		uc.appState.SetRate(*rate)
		uc.logger.Info("Rate seeded from cache", zap.Float64("eur_to_nok", rate.EURToNOK))
	}
	if weather, err := uc.cacheRepo.GetWeather(ctx); err == nil && weather != nil {
		uc.appState.SetWeather(weather)
		uc.logger.Info("Weather seeded from cache", zap.Time("fetched_at", weather.FetchedAt))
	}
	if solar, err := uc.cacheRepo.GetSolar(ctx); err == nil && solar != nil {
		uc.appState.SetSolar(solar)
		uc.logger.Info("Solar data seeded from cache", zap.Time("fetched_at", solar.FetchedAt))
	}
}

// RefreshRate fetches the conversion rate once. On failure the fallback (or
// cache-seeded) rate stays in effect.
func (uc *RefreshUseCase) RefreshRate(ctx context.Context) {
	rate, err := uc.rateRepo.FetchEURToNOK(ctx)
	if err != nil {
		uc.logger.Warn("Rate fetch failed, keeping current rate",
			zap.Float64("current", uc.appState.Rate().EURToNOK),
			zap.Error(err))
		return
	}

	snapshot := domain.RateSnapshot{
		EURToNOK:  rate,
		FetchedAt: uc.now(),
	}
	uc.appState.SetRate(snapshot)
	uc.cacheRate(ctx, &snapshot)

	uc.logger.Info("Exchange rate refreshed", zap.Float64("eur_to_nok", rate))
}

// RefreshWeather fetches the forecast once.
func (uc *RefreshUseCase) RefreshWeather(ctx context.Context) {
	snapshot, err := uc.weatherRepo.FetchForecast(ctx)
	if err != nil {
		uc.logger.Warn("Weather fetch failed, keeping current snapshot", zap.Error(err))
		return
	}

	uc.appState.SetWeather(snapshot)
	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetWeather(ctx, snapshot, uc.weatherCfg.SnapshotTTL); err != nil {
			uc.logger.Warn("Failed to cache weather snapshot", zap.Error(err))
		}
	}

	uc.logger.Info("Weather refreshed",
		zap.Int("hourly_count", len(snapshot.Hourly)),
		zap.Int("daily_count", len(snapshot.Daily)))
}

// RefreshSolar fetches today's solar cycle once.
func (uc *RefreshUseCase) RefreshSolar(ctx context.Context) {
	snapshot, err := uc.weatherRepo.FetchSolar(ctx)
	if err != nil {
		uc.logger.Warn("Solar fetch failed, keeping current snapshot", zap.Error(err))
		return
	}

	uc.appState.SetSolar(snapshot)
	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetSolar(ctx, snapshot, uc.weatherCfg.SnapshotTTL); err != nil {
			uc.logger.Warn("Failed to cache solar snapshot", zap.Error(err))
		}
	}

	uc.logger.Info("Solar data refreshed", zap.Float64("daylight_hours", snapshot.DaylightHours))
}

// RunAll launches the three one-shot fetches concurrently and returns
// immediately. The goroutines share the server's base context, so shutdown
// cancels a hung fetch.
func (uc *RefreshUseCase) RunAll(ctx context.Context) {
	go uc.RefreshRate(ctx)
	go uc.RefreshWeather(ctx)
	go uc.RefreshSolar(ctx)
}

func (uc *RefreshUseCase) cacheRate(ctx context.Context, snapshot *domain.RateSnapshot) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.SetRate(ctx, snapshot, uc.exchangeCfg.SnapshotTTL); err != nil {
		uc.logger.Warn("Failed to cache rate snapshot", zap.Error(err))
	}
}
