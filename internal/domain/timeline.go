package domain

import "fmt"

// ActivityStatus is the time-derived display state of an itinerary entry. It is
// independent of the user-toggled completion flag: an entry can be marked done
// early or stay unmarked after its window has passed.
type ActivityStatus string

const (
	StatusUpcoming  ActivityStatus = "upcoming"
	StatusActive    ActivityStatus = "active"
	StatusCompleted ActivityStatus = "completed"
)

// ClassifyActivity derives the display status of one activity at minute
// granularity: active iff start <= now < end.
func ClassifyActivity(a *Activity, now ClockTime) ActivityStatus {
	n := now.MinuteOfDay()
	start := a.StartTime.MinuteOfDay()
	end := a.EndTime.MinuteOfDay()

	switch {
	case n >= start && n < end:
		return StatusActive
	case n >= end:
		return StatusCompleted
	default:
		return StatusUpcoming
	}
}

// ActivityProgress returns the elapsed fraction of an active window, clamped to
// [0,1]. Instantaneous checkpoint entries (start == end) report 0.
func ActivityProgress(a *Activity, now ClockTime) float64 {
	start := a.StartTime.MinuteOfDay()
	end := a.EndTime.MinuteOfDay()
	if end <= start {
		return 0
	}

	p := float64(now.MinuteOfDay()-start) / float64(end-start)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// DurationMinutes returns the activity window length in minutes. A window that
// appears to end before it starts is read as crossing midnight; the single-day
// itinerary never does this, but it must not produce a negative duration.
func DurationMinutes(start, end ClockTime) int {
	diff := end.MinuteOfDay() - start.MinuteOfDay()
	if diff < 0 {
		diff += 24 * 60
	}
	return diff
}

// FormatDuration renders a window length: "1h 5m", "2h" or "30 min".
func FormatDuration(start, end ClockTime) string {
	diff := DurationMinutes(start, end)
	h := diff / 60
	m := diff % 60

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%d min", m)
	}
}

// Gap is the unscheduled interval between two consecutive itinerary entries,
// labeled as transit/free time.
type Gap struct {
	AfterID  string
	BeforeID string
	Minutes  int
	Current  bool
}

// GapBetween returns the gap between two consecutive activities, or nil when
// the next one starts at or before the end of the previous. Current is set iff
// now falls inside the gap.
func GapBetween(prev, next *Activity, now ClockTime) *Gap {
	end := prev.EndTime.MinuteOfDay()
	start := next.StartTime.MinuteOfDay()
	if start <= end {
		return nil
	}

	n := now.MinuteOfDay()
	return &Gap{
		AfterID:  prev.ID,
		BeforeID: next.ID,
		Minutes:  start - end,
		Current:  n >= end && n < start,
	}
}

// FormatGap renders a gap length: "15 min" below an hour, "1h 15m" above.
func FormatGap(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
