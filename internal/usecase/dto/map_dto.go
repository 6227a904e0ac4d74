package dto

import "github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"

// MarkerDTO is one map marker, either an itinerary entry or an extra POI.
// Distance is filled from the live position when one is known.
type MarkerDTO struct {
	ID       string            `json:"id,omitempty"`
	Title    string            `json:"title"`
	Coords   domain.Coordinate `json:"coords"`
	Kind     string            `json:"kind"`
	Distance string            `json:"distance,omitempty"`
}

// LegDTO is a start-to-end polyline for an entry that moves between two
// points, such as the ferry crossing.
type LegDTO struct {
	ActivityID string            `json:"activity_id"`
	Title      string            `json:"title"`
	From       domain.Coordinate `json:"from"`
	To         domain.Coordinate `json:"to"`
}

// POIsResponse is the full marker set of the map panel.
type POIsResponse struct {
	Markers []MarkerDTO `json:"markers"`
	Legs    []LegDTO    `json:"legs"`
}

// PositionRequest reports a device position fix.
type PositionRequest struct {
	Lat float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

// PositionResponse is the current device position.
type PositionResponse struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	ReportedAt string  `json:"reported_at"`
}
