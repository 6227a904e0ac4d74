package domain

import (
	"fmt"
	"time"
)

// Checkpoints are the two fixed clock-of-day deadlines of the port call.
type Checkpoints struct {
	Arrival   ClockTime
	AllAboard ClockTime
}

// CountdownTarget identifies which checkpoint a countdown is running toward.
type CountdownTarget string

const (
	TargetArrival   CountdownTarget = "arrival"
	TargetAllAboard CountdownTarget = "all_aboard"
)

const (
	countdownLabelArrival   = "Time until arrival"
	countdownLabelAllAboard = "Time until all aboard"
	countdownTermArrival    = "ARRIVING NOW"
	countdownTermAllAboard  = "ALL ABOARD"
)

// Countdown is one evaluation of the checkpoint countdown. It is derived
// entirely from the wall clock, so a missed tick self-corrects on the next
// evaluation.
type Countdown struct {
	Target    CountdownTarget
	Label     string
	Display   string
	Remaining time.Duration
	Terminal  bool
}

// EvaluateCountdown selects the next checkpoint and formats the remaining
// time: arrival while now precedes it, the all-aboard deadline afterwards.
// Once the selected target is reached the display pins to a terminal string
// instead of a negative duration.
func EvaluateCountdown(cp Checkpoints, now time.Time) Countdown {
	arrival := cp.Arrival.At(now)
	allAboard := cp.AllAboard.At(now)

	target := TargetAllAboard
	label := countdownLabelAllAboard
	terminal := countdownTermAllAboard
	deadline := allAboard

	if now.Before(arrival) {
		target = TargetArrival
		label = countdownLabelArrival
		terminal = countdownTermArrival
		deadline = arrival
	}

	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return Countdown{
			Target:    target,
			Label:     label,
			Display:   terminal,
			Remaining: 0,
			Terminal:  true,
		}
	}

	return Countdown{
		Target:    target,
		Label:     label,
		Display:   formatCountdown(remaining),
		Remaining: remaining,
	}
}

// formatCountdown renders "Hh Mm Ss"; hours are shown even when zero.
func formatCountdown(d time.Duration) string {
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
