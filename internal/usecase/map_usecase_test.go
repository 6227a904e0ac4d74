package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/content"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/state"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase/dto"
)

// stubStream records published fixes, optionally failing.
type stubStream struct {
	mu        sync.Mutex
	published []*domain.PositionFix
	fail      bool
}

func (s *stubStream) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return nil
}

func (s *stubStream) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	return nil, nil
}

func (s *stubStream) AckMessage(ctx context.Context, stream, group, id string) error {
	return nil
}

func (s *stubStream) PublishPosition(ctx context.Context, stream string, fix *domain.PositionFix) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return fmt.Errorf("stream unavailable")
	}
	s.published = append(s.published, fix)
	return nil
}

func TestMapUseCase_GetPOIs(t *testing.T) {
	ctx := context.Background()

	t.Run("markers cover itinerary and extra POIs", func(t *testing.T) {
		appState := state.New(11.8)
		uc := NewMapUseCase(content.NewStore(), appState, nil, zap.NewNop())

		resp := uc.GetPOIs(ctx)

		store := content.NewStore()
		assert.Len(t, resp.Markers, len(store.Activities())+len(store.ExtraPOIs()))
		assert.NotEmpty(t, resp.Legs)

		for _, m := range resp.Markers {
			assert.Empty(t, m.Distance)
		}
	})

	t.Run("distances filled from live position", func(t *testing.T) {
		appState := state.New(11.8)
		appState.SetPosition(&domain.PositionFix{Lat: 62.085348, Lng: 6.873744, ReportedAt: time.Now()})
		uc := NewMapUseCase(content.NewStore(), appState, nil, zap.NewNop())

		resp := uc.GetPOIs(ctx)
		for _, m := range resp.Markers {
			assert.NotEmpty(t, m.Distance)
		}
	})

	t.Run("legs carry both endpoints", func(t *testing.T) {
		uc := NewMapUseCase(content.NewStore(), state.New(11.8), nil, zap.NewNop())

		for _, leg := range uc.GetPOIs(ctx).Legs {
			assert.NotZero(t, leg.From.Lat)
			assert.NotZero(t, leg.To.Lat)
			assert.NotEqual(t, leg.From, leg.To)
		}
	})
}

func TestMapUseCase_Position(t *testing.T) {
	ctx := context.Background()

	t.Run("no position yet", func(t *testing.T) {
		uc := NewMapUseCase(content.NewStore(), state.New(11.8), nil, zap.NewNop())

		_, err := uc.GetPosition(ctx)
		assert.ErrorIs(t, err, errors.ErrNoLocation)
	})

	t.Run("report goes through the stream when wired", func(t *testing.T) {
		appState := state.New(11.8)
		stream := &stubStream{}
		uc := NewMapUseCase(content.NewStore(), appState, stream, zap.NewNop())

		resp, err := uc.ReportPosition(ctx, &dto.PositionRequest{Lat: 62.08, Lng: 6.87})
		require.NoError(t, err)
		assert.Equal(t, 62.08, resp.Lat)

		require.Len(t, stream.published, 1)
		// The worker applies streamed fixes; local state stays untouched here
		assert.Nil(t, appState.Position())
	})

	t.Run("report lands locally without a stream", func(t *testing.T) {
		appState := state.New(11.8)
		uc := NewMapUseCase(content.NewStore(), appState, nil, zap.NewNop())

		_, err := uc.ReportPosition(ctx, &dto.PositionRequest{Lat: 62.08, Lng: 6.87})
		require.NoError(t, err)

		fix := appState.Position()
		require.NotNil(t, fix)
		assert.Equal(t, 62.08, fix.Lat)
	})

	t.Run("stream failure falls back to local state", func(t *testing.T) {
		appState := state.New(11.8)
		uc := NewMapUseCase(content.NewStore(), appState, &stubStream{fail: true}, zap.NewNop())

		_, err := uc.ReportPosition(ctx, &dto.PositionRequest{Lat: 62.08, Lng: 6.87})
		require.NoError(t, err)
		assert.NotNil(t, appState.Position())
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		uc := NewMapUseCase(content.NewStore(), state.New(11.8), nil, zap.NewNop())

		_, err := uc.ReportPosition(ctx, &dto.PositionRequest{Lat: 95, Lng: 6.87})
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})
}
