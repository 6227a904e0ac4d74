package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
)

func newCountdownUC(t *testing.T, hour, minute, second int) *CountdownUseCase {
	t.Helper()
	loc := testLocation(t)
	uc := NewCountdownUseCase(domain.Checkpoints{
		Arrival:   domain.MustParseClock("09:00"),
		AllAboard: domain.MustParseClock("20:30"),
	}, loc, zap.NewNop())
	uc.now = func() time.Time {
		return time.Date(2026, 8, 30, hour, minute, second, 0, loc)
	}
	return uc
}

func TestCountdownUseCase_GetCountdown(t *testing.T) {
	ctx := context.Background()

	t.Run("before arrival counts toward arrival", func(t *testing.T) {
		resp := newCountdownUC(t, 7, 30, 0).GetCountdown(ctx)

		assert.Equal(t, "arrival", resp.Target)
		assert.Equal(t, "Time until arrival", resp.Label)
		assert.Equal(t, "1h 30m 0s", resp.Display)
		assert.Equal(t, 5400, resp.RemainingSeconds)
		assert.False(t, resp.Terminal)
	})

	t.Run("after arrival counts toward all aboard", func(t *testing.T) {
		resp := newCountdownUC(t, 12, 0, 30).GetCountdown(ctx)

		assert.Equal(t, "all_aboard", resp.Target)
		assert.Equal(t, "Time until all aboard", resp.Label)
		assert.Equal(t, "8h 29m 30s", resp.Display)
		assert.False(t, resp.Terminal)
	})

	t.Run("exactly at arrival switches target", func(t *testing.T) {
		resp := newCountdownUC(t, 9, 0, 0).GetCountdown(ctx)

		assert.Equal(t, "all_aboard", resp.Target)
		assert.False(t, resp.Terminal)
	})

	t.Run("past all aboard pins the terminal string", func(t *testing.T) {
		resp := newCountdownUC(t, 20, 45, 0).GetCountdown(ctx)

		assert.Equal(t, "all_aboard", resp.Target)
		assert.Equal(t, "ALL ABOARD", resp.Display)
		assert.Zero(t, resp.RemainingSeconds)
		assert.True(t, resp.Terminal)
	})

	t.Run("hours shown even when zero", func(t *testing.T) {
		resp := newCountdownUC(t, 20, 29, 15).GetCountdown(ctx)

		assert.Equal(t, "0h 0m 45s", resp.Display)
	})
}
