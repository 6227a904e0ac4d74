package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/config"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain/repository"
)

// Daytime window of the hourly panel, hours of day inclusive.
const (
	hourlyWindowStart = 9
	hourlyWindowEnd   = 20
)

// openMeteoTimeLayout is the timestamp format Open-Meteo uses when a timezone
// parameter is passed.
const openMeteoTimeLayout = "2006-01-02T15:04"

type client struct {
	httpClient   *http.Client
	baseURL      string
	latitude     float64
	longitude    float64
	timezone     string
	forecastDays int
	location     *time.Location
	logger       *zap.Logger
	now          func() time.Time
}

// NewOpenMeteoClient creates a client for the Open-Meteo forecast API, pinned
// to the port coordinates.
func NewOpenMeteoClient(cfg *config.WeatherConfig, port *config.PortConfig, logger *zap.Logger) (repository.WeatherRepository, error) {
	loc, err := time.LoadLocation(port.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", port.Timezone, err)
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:      cfg.BaseURL,
		latitude:     port.Latitude,
		longitude:    port.Longitude,
		timezone:     port.Timezone,
		forecastDays: cfg.ForecastDays,
		location:     loc,
		logger:       logger,
		now:          time.Now,
	}, nil
}

type forecastResponse struct {
	Hourly struct {
		Time                     []string  `json:"time"`
		Temperature2m            []float64 `json:"temperature_2m"`
		PrecipitationProbability []int     `json:"precipitation_probability"`
		WeatherCode              []int     `json:"weather_code"`
	} `json:"hourly"`
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		WeatherCode      []int     `json:"weather_code"`
	} `json:"daily"`
}

type solarResponse struct {
	Daily struct {
		Sunrise          []string  `json:"sunrise"`
		Sunset           []string  `json:"sunset"`
		DaylightDuration []float64 `json:"daylight_duration"`
	} `json:"daily"`
}

// FetchForecast returns today's daytime hourly window plus the multi-day
// outlook. Hours outside 09:00-20:00 and hours of other days are dropped from
// the hourly series.
func (c *client) FetchForecast(ctx context.Context) (*domain.WeatherSnapshot, error) {
	url := fmt.Sprintf("%s/v1/forecast?latitude=%.4f&longitude=%.4f"+
		"&hourly=temperature_2m,precipitation_probability,weather_code"+
		"&daily=temperature_2m_max,temperature_2m_min,weather_code"+
		"&forecast_days=%d&timezone=%s",
		c.baseURL, c.latitude, c.longitude, c.forecastDays, c.timezone)

	var parsed forecastResponse
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return nil, err
	}

	today := c.now().In(c.location).Format("2006-01-02")

	snapshot := &domain.WeatherSnapshot{
		FetchedAt: c.now(),
	}

	for i, ts := range parsed.Hourly.Time {
		if i >= len(parsed.Hourly.Temperature2m) || i >= len(parsed.Hourly.WeatherCode) {
			break
		}
		t, err := time.ParseInLocation(openMeteoTimeLayout, ts, c.location)
		if err != nil {
			continue
		}
		if t.Format("2006-01-02") != today {
			continue
		}
		if t.Hour() < hourlyWindowStart || t.Hour() > hourlyWindowEnd {
			continue
		}
		precip := 0
		if i < len(parsed.Hourly.PrecipitationProbability) {
			precip = parsed.Hourly.PrecipitationProbability[i]
		}
		code := parsed.Hourly.WeatherCode[i]
		snapshot.Hourly = append(snapshot.Hourly, domain.HourlyForecast{
			Time:          t.Format("15:04"),
			TemperatureC:  int(math.Round(parsed.Hourly.Temperature2m[i])),
			Precipitation: precip,
			WeatherCode:   code,
			Condition:     domain.ConditionForCode(code),
		})
	}

	for i, date := range parsed.Daily.Time {
		if i >= len(parsed.Daily.Temperature2mMax) || i >= len(parsed.Daily.Temperature2mMin) || i >= len(parsed.Daily.WeatherCode) {
			break
		}
		code := parsed.Daily.WeatherCode[i]
		snapshot.Daily = append(snapshot.Daily, domain.DailyForecast{
			Date:        date,
			MaxC:        parsed.Daily.Temperature2mMax[i],
			MinC:        parsed.Daily.Temperature2mMin[i],
			WeatherCode: code,
			Condition:   domain.ConditionForCode(code),
		})
	}

	c.logger.Debug("Open-Meteo forecast fetched",
		zap.Int("hourly_count", len(snapshot.Hourly)),
		zap.Int("daily_count", len(snapshot.Daily)))

	return snapshot, nil
}

// FetchSolar returns today's sunrise, sunset and daylight duration.
func (c *client) FetchSolar(ctx context.Context) (*domain.SolarSnapshot, error) {
	url := fmt.Sprintf("%s/v1/forecast?latitude=%.4f&longitude=%.4f"+
		"&daily=sunrise,sunset,daylight_duration"+
		"&forecast_days=1&timezone=%s",
		c.baseURL, c.latitude, c.longitude, c.timezone)

	var parsed solarResponse
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Daily.Sunrise) == 0 || len(parsed.Daily.Sunset) == 0 {
		c.logger.Error("Open-Meteo solar response missing sunrise/sunset")
		return nil, fmt.Errorf("solar response missing sunrise/sunset")
	}

	sunrise, err := time.ParseInLocation(openMeteoTimeLayout, parsed.Daily.Sunrise[0], c.location)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sunrise: %w", err)
	}
	sunset, err := time.ParseInLocation(openMeteoTimeLayout, parsed.Daily.Sunset[0], c.location)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sunset: %w", err)
	}

	daylight := sunset.Sub(sunrise).Hours()
	if len(parsed.Daily.DaylightDuration) > 0 {
		daylight = parsed.Daily.DaylightDuration[0] / 3600
	}

	snapshot := &domain.SolarSnapshot{
		Sunrise:       sunrise,
		Sunset:        sunset,
		DaylightHours: daylight,
		FetchedAt:     c.now(),
	}

	c.logger.Debug("Open-Meteo solar data fetched",
		zap.Time("sunrise", sunrise),
		zap.Time("sunset", sunset),
		zap.Float64("daylight_hours", daylight))

	return snapshot, nil
}

func (c *client) getJSON(ctx context.Context, url string, out interface{}) error {
	c.logger.Debug("Calling Open-Meteo API", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Open-Meteo API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("open-meteo API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
