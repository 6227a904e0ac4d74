package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/content"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/state"
)

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func atClock(t *testing.T, loc *time.Location, hour, minute int) func() time.Time {
	t.Helper()
	return func() time.Time {
		return time.Date(2026, 8, 30, hour, minute, 0, 0, loc)
	}
}

func newTimelineUC(t *testing.T, hour, minute int) (*TimelineUseCase, *state.AppState) {
	t.Helper()
	loc := testLocation(t)
	appState := state.New(11.8)
	uc := NewTimelineUseCase(content.NewStore(), appState, loc, zap.NewNop())
	uc.now = atClock(t, loc, hour, minute)
	return uc, appState
}

func TestTimelineUseCase_GetTimeline(t *testing.T) {
	t.Run("statuses at minute granularity", func(t *testing.T) {
		uc, _ := newTimelineUC(t, 10, 0)
		resp := uc.GetTimeline(context.Background())

		assert.Equal(t, "10:00", resp.Now)

		byID := map[string]string{}
		for _, a := range resp.Activities {
			byID[a.Activity.ID] = a.Status
		}
		assert.Equal(t, "completed", byID["0"])
		assert.Equal(t, "upcoming", byID["12"])

		var sawActive bool
		for _, a := range resp.Activities {
			if a.Status == "active" {
				sawActive = true
				assert.GreaterOrEqual(t, a.Progress, 0.0)
				assert.LessOrEqual(t, a.Progress, 1.0)
			}
		}
		assert.True(t, sawActive, "10:00 falls inside a scheduled window")
	})

	t.Run("an entry starting exactly now is active", func(t *testing.T) {
		uc, _ := newTimelineUC(t, 9, 30)
		resp := uc.GetTimeline(context.Background())

		var found bool
		for _, a := range resp.Activities {
			if a.StartTime == "09:30" {
				found = true
				assert.Equal(t, "active", a.Status)
				assert.Zero(t, a.Progress)
			}
		}
		assert.True(t, found)
	})

	t.Run("gaps only between non-adjacent entries", func(t *testing.T) {
		uc, _ := newTimelineUC(t, 12, 0)
		resp := uc.GetTimeline(context.Background())

		for _, g := range resp.Gaps {
			assert.Positive(t, g.Minutes)
			assert.NotEmpty(t, g.Label)
		}

		var currentCount int
		for _, g := range resp.Gaps {
			if g.Current {
				currentCount++
			}
		}
		assert.LessOrEqual(t, currentCount, 1)
	})

	t.Run("duration labels", func(t *testing.T) {
		uc, _ := newTimelineUC(t, 9, 0)
		resp := uc.GetTimeline(context.Background())

		for _, a := range resp.Activities {
			if a.StartTime == a.EndTime {
				assert.Equal(t, "0 min", a.DurationLabel)
				continue
			}
			assert.NotEmpty(t, a.DurationLabel)
		}
	})
}

func TestTimelineUseCase_ToggleCompleted(t *testing.T) {
	uc, appState := newTimelineUC(t, 9, 0)
	ctx := context.Background()

	t.Run("toggle pair is idempotent", func(t *testing.T) {
		resp, err := uc.ToggleCompleted(ctx, "4")
		require.NoError(t, err)
		assert.True(t, resp.Completed)

		resp, err = uc.ToggleCompleted(ctx, "4")
		require.NoError(t, err)
		assert.False(t, resp.Completed)
		assert.False(t, appState.IsCompleted("4"))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.ToggleCompleted(ctx, "unknown")
		assert.ErrorIs(t, err, errors.ErrActivityNotFound)
	})

	t.Run("manual completion is independent of the clock", func(t *testing.T) {
		_, err := uc.ToggleCompleted(ctx, "12")
		require.NoError(t, err)

		resp := uc.GetTimeline(ctx)
		for _, a := range resp.Activities {
			if a.Activity.ID == "12" {
				assert.True(t, a.Completed)
				assert.Equal(t, "upcoming", a.Status)
			}
		}
	})
}

func TestTimelineUseCase_Distances(t *testing.T) {
	ctx := context.Background()

	t.Run("no fix means no distances", func(t *testing.T) {
		uc, _ := newTimelineUC(t, 10, 0)
		for _, a := range uc.GetTimeline(ctx).Activities {
			assert.Empty(t, a.Distance)
		}
	})

	t.Run("fix fills every entry", func(t *testing.T) {
		uc, appState := newTimelineUC(t, 10, 0)
		appState.SetPosition(&domain.PositionFix{Lat: 62.085348, Lng: 6.873744})

		for _, a := range uc.GetTimeline(ctx).Activities {
			assert.NotEmpty(t, a.Distance, "entry %s", a.Activity.ID)
		}
	})
}
