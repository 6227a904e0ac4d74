package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/content"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/state"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase/dto"
)

// TimelineUseCase serves the itinerary, its time-classified timeline view and
// the completion toggle. All time reads go through the port timezone.
type TimelineUseCase struct {
	store    *content.Store
	appState *state.AppState
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

func NewTimelineUseCase(
	store *content.Store,
	appState *state.AppState,
	location *time.Location,
	logger *zap.Logger,
) *TimelineUseCase {
	return &TimelineUseCase{
		store:    store,
		appState: appState,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// GetItinerary returns the full itinerary with completion flags, without
// time classification.
func (uc *TimelineUseCase) GetItinerary(ctx context.Context) *dto.ItineraryResponse {
	completed := uc.appState.CompletedSet()
	nowClock := domain.ClockOf(uc.now().In(uc.location))

	activities := uc.store.Activities()
	out := make([]dto.ActivityDTO, 0, len(activities))
	for _, a := range activities {
		out = append(out, buildActivityDTO(a, nowClock, completed[a.ID]))
	}

	return &dto.ItineraryResponse{Activities: out}
}

// GetTimeline returns the classified itinerary plus its gaps, evaluated at
// request time.
func (uc *TimelineUseCase) GetTimeline(ctx context.Context) *dto.TimelineResponse {
	now := uc.now().In(uc.location)
	nowClock := domain.ClockOf(now)
	completed := uc.appState.CompletedSet()
	fix := uc.appState.Position()

	activities := uc.store.Activities()
	entries := make([]dto.ActivityDTO, 0, len(activities))
	var gaps []dto.GapDTO

	for i, a := range activities {
		entry := buildActivityDTO(a, nowClock, completed[a.ID])
		if fix != nil {
			meters := utils.HaversineDistance(fix.Lat, fix.Lng, a.Coords.Lat, a.Coords.Lng)
			entry.Distance = utils.FormatDistance(meters)
		}
		entries = append(entries, entry)

		if i == 0 {
			continue
		}
		if gap := domain.GapBetween(activities[i-1], a, nowClock); gap != nil {
			gaps = append(gaps, dto.GapDTO{
				AfterID:  gap.AfterID,
				BeforeID: gap.BeforeID,
				Minutes:  gap.Minutes,
				Label:    domain.FormatGap(gap.Minutes),
				Current:  gap.Current,
			})
		}
	}

	return &dto.TimelineResponse{
		Now:        nowClock.String(),
		Activities: entries,
		Gaps:       gaps,
	}
}

// ToggleCompleted flips an activity's completion flag.
func (uc *TimelineUseCase) ToggleCompleted(ctx context.Context, id string) (*dto.ToggleResponse, error) {
	if uc.store.Activity(id) == nil {
		return nil, errors.ErrActivityNotFound
	}

	completed := uc.appState.ToggleCompleted(id)
	uc.logger.Info("Activity completion toggled",
		zap.String("activity_id", id),
		zap.Bool("completed", completed))

	return &dto.ToggleResponse{ID: id, Completed: completed}, nil
}

func buildActivityDTO(a *domain.Activity, now domain.ClockTime, completed bool) dto.ActivityDTO {
	return dto.ActivityDTO{
		Activity:      a,
		StartTime:     a.StartTime.String(),
		EndTime:       a.EndTime.String(),
		DurationLabel: domain.FormatDuration(a.StartTime, a.EndTime),
		Status:        string(domain.ClassifyActivity(a, now)),
		Progress:      domain.ActivityProgress(a, now),
		Completed:     completed,
		HasAudioGuide: a.HasAudioGuide(),
		IsCritical:    a.IsCritical(),
	}
}
