package dto

import "github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"

// ActivityDTO is one itinerary entry as served to the client, combining the
// static entry with its time-derived status and the session completion flag.
type ActivityDTO struct {
	*domain.Activity
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	DurationLabel string  `json:"duration_label"`
	Status        string  `json:"status"`
	Progress      float64 `json:"progress"`
	Completed     bool    `json:"completed"`
	HasAudioGuide bool    `json:"has_audio_guide"`
	IsCritical    bool    `json:"is_critical"`
	// Distance from the latest device position, empty without a fix.
	Distance string `json:"distance,omitempty"`
}

// GapDTO is an unscheduled interval between consecutive entries.
type GapDTO struct {
	AfterID  string `json:"after_id"`
	BeforeID string `json:"before_id"`
	Minutes  int    `json:"minutes"`
	Label    string `json:"label"`
	Current  bool   `json:"current"`
}

// ItineraryResponse is the full itinerary with completion flags.
type ItineraryResponse struct {
	Activities []ActivityDTO `json:"activities"`
}

// TimelineResponse is the classified itinerary plus its gaps, evaluated at
// request time.
type TimelineResponse struct {
	Now        string        `json:"now"`
	Activities []ActivityDTO `json:"activities"`
	Gaps       []GapDTO      `json:"gaps"`
}

// ToggleResponse reports the flag value after a toggle.
type ToggleResponse struct {
	ID        string `json:"id"`
	Completed bool   `json:"completed"`
}
