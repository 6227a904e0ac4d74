package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func windowActivity(id, start, end string) *Activity {
	return &Activity{
		ID:        id,
		StartTime: MustParseClock(start),
		EndTime:   MustParseClock(end),
	}
}

func TestClassifyActivity(t *testing.T) {
	a := windowActivity("ferry", "11:00", "12:05")

	tests := []struct {
		name     string
		now      ClockTime
		expected ActivityStatus
	}{
		{"well before the window", MustParseClock("08:00"), StatusUpcoming},
		{"one minute before start", MustParseClock("10:59"), StatusUpcoming},
		{"exactly at start", MustParseClock("11:00"), StatusActive},
		{"mid window", MustParseClock("11:30"), StatusActive},
		{"one minute before end", MustParseClock("12:04"), StatusActive},
		{"exactly at end", MustParseClock("12:05"), StatusCompleted},
		{"after the window", MustParseClock("15:00"), StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyActivity(a, tt.now))
		})
	}
}

func TestClassifyActivity_InstantCheckpoint(t *testing.T) {
	// A zero-length entry is never active: it flips straight from upcoming
	// to completed at its minute.
	a := windowActivity("all-aboard", "20:30", "20:30")

	assert.Equal(t, StatusUpcoming, ClassifyActivity(a, MustParseClock("20:29")))
	assert.Equal(t, StatusCompleted, ClassifyActivity(a, MustParseClock("20:30")))
}

func TestActivityProgress(t *testing.T) {
	a := windowActivity("ferry", "11:00", "12:00")

	tests := []struct {
		name     string
		now      ClockTime
		expected float64
	}{
		{"before start clamps to zero", MustParseClock("10:00"), 0},
		{"at start", MustParseClock("11:00"), 0},
		{"quarter in", MustParseClock("11:15"), 0.25},
		{"half way", MustParseClock("11:30"), 0.5},
		{"at end", MustParseClock("12:00"), 1},
		{"after end clamps to one", MustParseClock("14:00"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ActivityProgress(a, tt.now), 0.0001)
		})
	}

	t.Run("instant entry reports zero", func(t *testing.T) {
		instant := windowActivity("dock", "09:00", "09:00")
		assert.Zero(t, ActivityProgress(instant, MustParseClock("12:00")))
	})
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected string
	}{
		{"hours and minutes", "11:00", "12:05", "1h 5m"},
		{"whole hours", "16:00", "18:00", "2h"},
		{"minutes only", "08:00", "08:30", "30 min"},
		{"instant entry", "09:00", "09:00", "0 min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(MustParseClock(tt.start), MustParseClock(tt.end)))
		})
	}
}

func TestGapBetween(t *testing.T) {
	prev := windowActivity("walk", "08:00", "08:30")
	next := windowActivity("dock", "09:00", "09:00")

	t.Run("gap exists", func(t *testing.T) {
		gap := GapBetween(prev, next, MustParseClock("07:00"))
		assert.NotNil(t, gap)
		assert.Equal(t, "walk", gap.AfterID)
		assert.Equal(t, "dock", gap.BeforeID)
		assert.Equal(t, 30, gap.Minutes)
		assert.False(t, gap.Current)
	})

	t.Run("now inside the gap", func(t *testing.T) {
		gap := GapBetween(prev, next, MustParseClock("08:45"))
		assert.NotNil(t, gap)
		assert.True(t, gap.Current)
	})

	t.Run("now at gap end is no longer current", func(t *testing.T) {
		gap := GapBetween(prev, next, MustParseClock("09:00"))
		assert.NotNil(t, gap)
		assert.False(t, gap.Current)
	})

	t.Run("back to back entries have no gap", func(t *testing.T) {
		a := windowActivity("a", "10:45", "11:00")
		b := windowActivity("b", "11:00", "12:05")
		assert.Nil(t, GapBetween(a, b, MustParseClock("11:00")))
	})
}

func TestFormatGap(t *testing.T) {
	assert.Equal(t, "15 min", FormatGap(15))
	assert.Equal(t, "59 min", FormatGap(59))
	assert.Equal(t, "1h 15m", FormatGap(75))
}
