package dto

import "github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"

// WeatherResponse is the forecast panel payload. Loading is set while no
// fetch has succeeded yet and the slices are empty.
type WeatherResponse struct {
	Hourly    []domain.HourlyForecast `json:"hourly"`
	Daily     []domain.DailyForecast  `json:"daily"`
	FetchedAt string                  `json:"fetched_at,omitempty"`
	Loading   bool                    `json:"loading"`
}

// SolarResponse positions sunrise, sunset and the request instant on a 24h
// bar as percents of the day. NowPercent is recomputed per request.
type SolarResponse struct {
	Sunrise        string  `json:"sunrise"`
	Sunset         string  `json:"sunset"`
	DaylightHours  float64 `json:"daylight_hours"`
	SunrisePercent float64 `json:"sunrise_percent"`
	SunsetPercent  float64 `json:"sunset_percent"`
	NowPercent     float64 `json:"now_percent"`
	Loading        bool    `json:"loading"`
}

// PhrasebookResponse is the pronunciation list.
type PhrasebookResponse struct {
	Entries []domain.Pronunciation `json:"entries"`
}

// LinksResponse carries the utility links of the guide panel. SOSUrl embeds
// the live coordinates and is present only when a position is known.
type LinksResponse struct {
	SOSUrl           string `json:"sos_url,omitempty"`
	TranslatorURL    string `json:"translator_url"`
	CruiseLineAppURL string `json:"cruise_line_app_url"`
}

// SOSResponse is the emergency WhatsApp link with the live coordinates baked
// into the message text.
type SOSResponse struct {
	URL     string  `json:"url"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
