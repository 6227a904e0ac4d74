package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/content"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/state"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase/dto"
)

// Utility links of the guide panel.
const (
	translatorURL    = "https://translate.google.com/?sl=no&tl=en&op=images"
	cruiseLineAppURL = "https://www.msccruises.com/en-gl/msc-for-me.html"
	whatsappBaseURL  = "https://wa.me/"
)

// GuideUseCase serves the reference panels: weather, solar bar, phrasebook
// and utility links. It only ever reads snapshots; the refresh goroutines own
// the writes.
type GuideUseCase struct {
	store    *content.Store
	appState *state.AppState
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

func NewGuideUseCase(
	store *content.Store,
	appState *state.AppState,
	location *time.Location,
	logger *zap.Logger,
) *GuideUseCase {
	return &GuideUseCase{
		store:    store,
		appState: appState,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// GetWeather returns the forecast snapshot, or a loading payload while no
// fetch has succeeded.
func (uc *GuideUseCase) GetWeather(ctx context.Context) *dto.WeatherResponse {
	snapshot := uc.appState.Weather()
	if snapshot == nil {
		return &dto.WeatherResponse{Loading: true}
	}

	return &dto.WeatherResponse{
		Hourly:    snapshot.Hourly,
		Daily:     snapshot.Daily,
		FetchedAt: snapshot.FetchedAt.Format(time.RFC3339),
	}
}

// GetSolar positions sunrise, sunset and the request instant on the 24h bar.
// The now marker is recomputed on every call; the snapshot itself is fetched
// once per day.
func (uc *GuideUseCase) GetSolar(ctx context.Context) *dto.SolarResponse {
	snapshot := uc.appState.Solar()
	if snapshot == nil {
		return &dto.SolarResponse{Loading: true}
	}

	now := uc.now().In(uc.location)

	return &dto.SolarResponse{
		Sunrise:        snapshot.Sunrise.In(uc.location).Format("15:04"),
		Sunset:         snapshot.Sunset.In(uc.location).Format("15:04"),
		DaylightHours:  snapshot.DaylightHours,
		SunrisePercent: dayPercent(snapshot.Sunrise.In(uc.location)),
		SunsetPercent:  dayPercent(snapshot.Sunset.In(uc.location)),
		NowPercent:     dayPercent(now),
	}
}

// GetPhrasebook returns the pronunciation list.
func (uc *GuideUseCase) GetPhrasebook(ctx context.Context) *dto.PhrasebookResponse {
	return &dto.PhrasebookResponse{Entries: uc.store.Phrasebook()}
}

// GetLinks returns the utility links. The SOS link is included only when a
// live position is known.
func (uc *GuideUseCase) GetLinks(ctx context.Context) *dto.LinksResponse {
	resp := &dto.LinksResponse{
		TranslatorURL:    translatorURL,
		CruiseLineAppURL: cruiseLineAppURL,
	}

	if fix := uc.appState.Position(); fix != nil {
		resp.SOSUrl = sosLink(fix.Lat, fix.Lng)
	}

	return resp
}

// GetSOS builds the emergency WhatsApp link with the live coordinates. No
// known position is an error, not a link without coordinates.
func (uc *GuideUseCase) GetSOS(ctx context.Context) (*dto.SOSResponse, error) {
	fix := uc.appState.Position()
	if fix == nil {
		return nil, errors.ErrNoLocation
	}

	return &dto.SOSResponse{
		URL:     sosLink(fix.Lat, fix.Lng),
		Message: sosMessage(fix.Lat, fix.Lng),
		Lat:     fix.Lat,
		Lng:     fix.Lng,
	}, nil
}

func sosMessage(lat, lng float64) string {
	return fmt.Sprintf("EMERGENCY. I need help. My location: https://maps.google.com/?q=%f,%f", lat, lng)
}

func sosLink(lat, lng float64) string {
	return whatsappBaseURL + "?text=" + url.QueryEscape(sosMessage(lat, lng))
}

// dayPercent maps an instant onto [0,100] across its calendar day.
func dayPercent(t time.Time) float64 {
	minutes := t.Hour()*60 + t.Minute()
	return float64(minutes) / (24 * 60) * 100
}
