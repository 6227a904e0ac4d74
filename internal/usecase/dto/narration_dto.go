package dto

import "github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"

// PlayRequest starts narration of one track. Source selects the script set:
// "guide" reads an activity's audio track, "phrasebook" a pronunciation entry.
type PlayRequest struct {
	Source     string `json:"source" validate:"required,oneof=guide phrasebook"`
	ActivityID string `json:"activity_id" validate:"required_if=Source guide"`
	TrackID    int    `json:"track_id"`
	Word       string `json:"word" validate:"required_if=Source phrasebook"`
}

// NarrationStatusResponse is the playback slot as observed at request time.
type NarrationStatusResponse struct {
	State      string `json:"state"`
	Source     string `json:"source,omitempty"`
	ActivityID string `json:"activity_id,omitempty"`
	TrackID    int    `json:"track_id,omitempty"`
	Title      string `json:"title,omitempty"`
	StartedAt  string `json:"started_at,omitempty"`
}

// AudioGuideResponse is the track set of one activity.
type AudioGuideResponse struct {
	ActivityID string              `json:"activity_id"`
	Key        string              `json:"key"`
	Title      string              `json:"title"`
	Tracks     []domain.AudioTrack `json:"tracks"`
}
