package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/content"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain/repository"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/state"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase/dto"
)

// MapUseCase serves the map markers and the device position. Position updates
// go through the stream when one is wired, so any consumer instance observes
// them; without Redis they land in local state directly.
type MapUseCase struct {
	store      *content.Store
	appState   *state.AppState
	streamRepo repository.StreamRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewMapUseCase(
	store *content.Store,
	appState *state.AppState,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *MapUseCase {
	return &MapUseCase{
		store:      store,
		appState:   appState,
		streamRepo: streamRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// GetPOIs returns every map marker plus the start-to-end legs. Marker
// distances are filled from the live position when one is known.
func (uc *MapUseCase) GetPOIs(ctx context.Context) *dto.POIsResponse {
	fix := uc.appState.Position()

	activities := uc.store.Activities()
	markers := make([]dto.MarkerDTO, 0, len(activities))
	var legs []dto.LegDTO

	for _, a := range activities {
		m := dto.MarkerDTO{
			ID:     a.ID,
			Title:  a.Title,
			Coords: a.Coords,
			Kind:   string(a.Type),
		}
		if fix != nil {
			m.Distance = utils.FormatDistance(
				utils.HaversineDistance(fix.Lat, fix.Lng, a.Coords.Lat, a.Coords.Lng))
		}
		markers = append(markers, m)

		if a.EndCoords != nil {
			legs = append(legs, dto.LegDTO{
				ActivityID: a.ID,
				Title:      a.Title,
				From:       a.Coords,
				To:         *a.EndCoords,
			})
		}
	}

	for _, poi := range uc.store.ExtraPOIs() {
		m := dto.MarkerDTO{
			Title:  poi.Title,
			Coords: poi.Coords,
			Kind:   "poi",
		}
		if fix != nil {
			m.Distance = utils.FormatDistance(
				utils.HaversineDistance(fix.Lat, fix.Lng, poi.Coords.Lat, poi.Coords.Lng))
		}
		markers = append(markers, m)
	}

	return &dto.POIsResponse{Markers: markers, Legs: legs}
}

// GetPosition returns the current device position, or ErrNoLocation before
// the first fix.
func (uc *MapUseCase) GetPosition(ctx context.Context) (*dto.PositionResponse, error) {
	fix := uc.appState.Position()
	if fix == nil {
		return nil, errors.ErrNoLocation
	}

	return &dto.PositionResponse{
		Lat:        fix.Lat,
		Lng:        fix.Lng,
		ReportedAt: fix.ReportedAt.Format(time.RFC3339),
	}, nil
}

// ReportPosition records a device fix. With a stream wired the fix is
// published and the position worker applies it; otherwise it is applied
// directly.
func (uc *MapUseCase) ReportPosition(ctx context.Context, req *dto.PositionRequest) (*dto.PositionResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	fix := &domain.PositionFix{
		Lat:        req.Lat,
		Lng:        req.Lng,
		ReportedAt: uc.now(),
	}

	if uc.streamRepo != nil {
		if err := uc.streamRepo.PublishPosition(ctx, domain.StreamPositionUpdates, fix); err != nil {
			// Stream trouble must not lose the fix
			uc.logger.Warn("Failed to publish position, applying locally", zap.Error(err))
			uc.appState.SetPosition(fix)
		}
	} else {
		uc.appState.SetPosition(fix)
	}

	return &dto.PositionResponse{
		Lat:        fix.Lat,
		Lng:        fix.Lng,
		ReportedAt: fix.ReportedAt.Format(time.RFC3339),
	}, nil
}
