package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCheckpoints() Checkpoints {
	return Checkpoints{
		Arrival:   MustParseClock("09:00"),
		AllAboard: MustParseClock("20:30"),
	}
}

func atTime(t *testing.T, h, m, s int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return time.Date(2026, 8, 30, h, m, s, 0, loc)
}

func TestEvaluateCountdown(t *testing.T) {
	cp := testCheckpoints()

	tests := []struct {
		name      string
		now       time.Time
		target    CountdownTarget
		display   string
		remaining time.Duration
		terminal  bool
	}{
		{
			name:      "early morning counts toward arrival",
			now:       atTime(t, 7, 30, 0),
			target:    TargetArrival,
			display:   "1h 30m 0s",
			remaining: 90 * time.Minute,
		},
		{
			name:      "seconds are part of the display",
			now:       atTime(t, 8, 59, 15),
			target:    TargetArrival,
			display:   "0h 0m 45s",
			remaining: 45 * time.Second,
		},
		{
			name:      "at arrival the target flips to all aboard",
			now:       atTime(t, 9, 0, 0),
			target:    TargetAllAboard,
			display:   "11h 30m 0s",
			remaining: 11*time.Hour + 30*time.Minute,
		},
		{
			name:      "afternoon counts toward all aboard",
			now:       atTime(t, 18, 0, 0),
			target:    TargetAllAboard,
			display:   "2h 30m 0s",
			remaining: 2*time.Hour + 30*time.Minute,
		},
		{
			name:     "at all aboard the display pins",
			now:      atTime(t, 20, 30, 0),
			target:   TargetAllAboard,
			display:  "ALL ABOARD",
			terminal: true,
		},
		{
			name:     "past all aboard never goes negative",
			now:      atTime(t, 23, 0, 0),
			target:   TargetAllAboard,
			display:  "ALL ABOARD",
			terminal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := EvaluateCountdown(cp, tt.now)
			assert.Equal(t, tt.target, cd.Target)
			assert.Equal(t, tt.display, cd.Display)
			assert.Equal(t, tt.remaining, cd.Remaining)
			assert.Equal(t, tt.terminal, cd.Terminal)
		})
	}
}

func TestEvaluateCountdown_SelfCorrects(t *testing.T) {
	// Two evaluations a minute apart differ by exactly that minute; the
	// countdown carries no state between ticks.
	cp := testCheckpoints()

	first := EvaluateCountdown(cp, atTime(t, 10, 0, 0))
	second := EvaluateCountdown(cp, atTime(t, 10, 1, 0))

	assert.Equal(t, time.Minute, first.Remaining-second.Remaining)
}
