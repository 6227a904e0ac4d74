package repository

import (
	"context"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
)

// WeatherRepository fetches forecast and solar data for the fixed port
// location.
type WeatherRepository interface {
	// FetchForecast returns today's daytime hourly window and the multi-day
	// daily outlook.
	FetchForecast(ctx context.Context) (*domain.WeatherSnapshot, error)

	// FetchSolar returns today's sunrise, sunset and daylight duration.
	FetchSolar(ctx context.Context) (*domain.SolarSnapshot, error)
}
