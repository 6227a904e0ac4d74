package domain

import "time"

// WeatherCondition is the coarse icon bucket derived from a WMO weather code.
type WeatherCondition string

const (
	ConditionClear WeatherCondition = "clear"
	ConditionRain  WeatherCondition = "rain"
	ConditionSnow  WeatherCondition = "snow"
)

// ConditionForCode maps a WMO weather code onto an icon bucket using the
// threshold table: codes up to 3 are clear skies, up to 60 rain, above snow.
func ConditionForCode(code int) WeatherCondition {
	switch {
	case code <= 3:
		return ConditionClear
	case code <= 60:
		return ConditionRain
	default:
		return ConditionSnow
	}
}

// HourlyForecast is one hour of today's daytime forecast window.
type HourlyForecast struct {
	Time          string           `json:"time"`
	TemperatureC  int              `json:"temperature_c"`
	Precipitation int              `json:"precipitation_probability"`
	WeatherCode   int              `json:"weather_code"`
	Condition     WeatherCondition `json:"condition"`
}

// DailyForecast is one day of the multi-day outlook.
type DailyForecast struct {
	Date        string           `json:"date"`
	MaxC        float64          `json:"max_c"`
	MinC        float64          `json:"min_c"`
	WeatherCode int              `json:"weather_code"`
	Condition   WeatherCondition `json:"condition"`
}

// WeatherSnapshot is the last successfully fetched forecast. A zero snapshot
// (FetchedAt.IsZero()) means the panel is still in its loading/fallback state.
type WeatherSnapshot struct {
	Hourly    []HourlyForecast `json:"hourly"`
	Daily     []DailyForecast  `json:"daily"`
	FetchedAt time.Time        `json:"fetched_at"`
}

// SolarSnapshot is today's solar cycle at the port.
type SolarSnapshot struct {
	Sunrise       time.Time `json:"sunrise"`
	Sunset        time.Time `json:"sunset"`
	DaylightHours float64   `json:"daylight_hours"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// RateSnapshot is the EUR->NOK conversion rate in effect, either fetched or
// the hardcoded fallback.
type RateSnapshot struct {
	EURToNOK  float64   `json:"eur_to_nok"`
	Fallback  bool      `json:"fallback"`
	FetchedAt time.Time `json:"fetched_at"`
}
