package domain

import (
	"fmt"
	"time"
)

// ClockTime is a clock-of-day value with minute granularity, detached from any
// date or timezone. All itinerary times and checkpoints are ClockTimes read
// against "today" at the port.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM".
func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// MustParseClock is for static, hand-authored content where a malformed time
// string is an authoring error, not a runtime condition.
func MustParseClock(s string) ClockTime {
	ct, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return ct
}

// MinuteOfDay returns the minutes elapsed since midnight.
func (ct ClockTime) MinuteOfDay() int {
	return ct.Hour*60 + ct.Minute
}

// String renders the zero-padded "HH:MM" form.
func (ct ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", ct.Hour, ct.Minute)
}

// At anchors the clock time onto the calendar day of ref, in ref's location.
func (ct ClockTime) At(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), ct.Hour, ct.Minute, 0, 0, ref.Location())
}

// ClockOf extracts the ClockTime of a wall-clock instant.
func ClockOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}
