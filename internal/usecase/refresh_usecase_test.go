package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/config"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/state"
)

type stubRateRepo struct {
	rate float64
	err  error
}

func (s *stubRateRepo) FetchEURToNOK(ctx context.Context) (float64, error) {
	return s.rate, s.err
}

type stubWeatherRepo struct {
	forecast *domain.WeatherSnapshot
	solar    *domain.SolarSnapshot
	err      error
}

func (s *stubWeatherRepo) FetchForecast(ctx context.Context) (*domain.WeatherSnapshot, error) {
	return s.forecast, s.err
}

func (s *stubWeatherRepo) FetchSolar(ctx context.Context) (*domain.SolarSnapshot, error) {
	return s.solar, s.err
}

func newRefreshUC(rateRepo *stubRateRepo, weatherRepo *stubWeatherRepo, appState *state.AppState) *RefreshUseCase {
	return NewRefreshUseCase(
		rateRepo,
		weatherRepo,
		nil, // no cache wired
		appState,
		&config.ExchangeConfig{SnapshotTTL: time.Hour},
		&config.WeatherConfig{SnapshotTTL: time.Hour},
		zap.NewNop(),
	)
}

func TestRefreshUseCase_RefreshRate(t *testing.T) {
	ctx := context.Background()

	t.Run("success replaces the fallback", func(t *testing.T) {
		appState := state.New(11.8)
		uc := newRefreshUC(&stubRateRepo{rate: 11.42}, &stubWeatherRepo{}, appState)

		uc.RefreshRate(ctx)

		rate := appState.Rate()
		assert.Equal(t, 11.42, rate.EURToNOK)
		assert.False(t, rate.Fallback)
		assert.False(t, rate.FetchedAt.IsZero())
	})

	t.Run("failure keeps the fallback silently", func(t *testing.T) {
		appState := state.New(11.8)
		uc := newRefreshUC(&stubRateRepo{err: fmt.Errorf("api down")}, &stubWeatherRepo{}, appState)

		uc.RefreshRate(ctx)

		rate := appState.Rate()
		assert.Equal(t, 11.8, rate.EURToNOK)
		assert.True(t, rate.Fallback)
	})
}

func TestRefreshUseCase_RefreshWeather(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores the snapshot", func(t *testing.T) {
		appState := state.New(11.8)
		snapshot := &domain.WeatherSnapshot{
			Hourly:    []domain.HourlyForecast{{Time: "09:00"}},
			FetchedAt: time.Now(),
		}
		uc := newRefreshUC(&stubRateRepo{}, &stubWeatherRepo{forecast: snapshot}, appState)

		uc.RefreshWeather(ctx)
		assert.Equal(t, snapshot, appState.Weather())
	})

	t.Run("failure leaves the panel in loading state", func(t *testing.T) {
		appState := state.New(11.8)
		uc := newRefreshUC(&stubRateRepo{}, &stubWeatherRepo{err: fmt.Errorf("api down")}, appState)

		uc.RefreshWeather(ctx)
		assert.Nil(t, appState.Weather())
	})

	t.Run("failure never clobbers a prior snapshot", func(t *testing.T) {
		appState := state.New(11.8)
		prior := &domain.WeatherSnapshot{FetchedAt: time.Now()}
		appState.SetWeather(prior)

		uc := newRefreshUC(&stubRateRepo{}, &stubWeatherRepo{err: fmt.Errorf("api down")}, appState)
		uc.RefreshWeather(ctx)

		assert.Equal(t, prior, appState.Weather())
	})
}

func TestRefreshUseCase_RefreshSolar(t *testing.T) {
	ctx := context.Background()
	appState := state.New(11.8)
	snapshot := &domain.SolarSnapshot{DaylightHours: 14.5, FetchedAt: time.Now()}
	uc := newRefreshUC(&stubRateRepo{}, &stubWeatherRepo{solar: snapshot}, appState)

	uc.RefreshSolar(ctx)
	assert.Equal(t, snapshot, appState.Solar())
}

func TestRefreshUseCase_SeedFromCache(t *testing.T) {
	// Without a cache repository seeding must be a harmless no-op
	appState := state.New(11.8)
	uc := newRefreshUC(&stubRateRepo{}, &stubWeatherRepo{}, appState)

	uc.SeedFromCache(context.Background())

	assert.True(t, appState.Rate().Fallback)
	assert.Nil(t, appState.Weather())
}
