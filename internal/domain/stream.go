package domain

import "time"

// StreamPositionUpdates carries device position fixes into the service.
const StreamPositionUpdates = "stream:position:updates"

// StreamMessage is one raw entry read from a Redis stream.
type StreamMessage struct {
	ID   string
	Data map[string]interface{}
}

// PositionFix is one device position update from the continuous subscription.
// Only the latest fix is retained; there is no position history.
type PositionFix struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	ReportedAt time.Time `json:"reported_at"`
}

// Coordinate returns the fix as a plain coordinate.
func (f PositionFix) Coordinate() Coordinate {
	return Coordinate{Lat: f.Lat, Lng: f.Lng}
}
