package domain

// ActivityType classifies an itinerary entry.
type ActivityType string

const (
	ActivityFood        ActivityType = "food"
	ActivityLogistics   ActivityType = "logistics"
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityTransport   ActivityType = "transport"
)

// NotesCritical marks an activity as a hard deadline; it changes the visual
// treatment of the entry but carries no scheduling semantics of its own.
const NotesCritical = "CRITICAL"

// Activity is one scheduled itinerary entry. The itinerary is stored in fixed
// ascending order by StartTime and is never re-sorted at runtime; gap and
// overlap computations rely on that order without re-validating it.
type Activity struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	StartTime       ClockTime    `json:"-"`
	EndTime         ClockTime    `json:"-"`
	LocationName    string       `json:"location_name"`
	EndLocationName string       `json:"end_location_name,omitempty"`
	Coords          Coordinate   `json:"coords"`
	EndCoords       *Coordinate  `json:"end_coords,omitempty"`
	Description     string       `json:"description"`
	FullDescription string       `json:"full_description"`
	Tips            string       `json:"tips"`
	KeyDetails      string       `json:"key_details"`
	PriceNOK        float64      `json:"price_nok"`
	PriceEUR        float64      `json:"price_eur"`
	Type            ActivityType `json:"type"`
	Notes           string       `json:"notes,omitempty"`
	InstagramURL    string       `json:"instagram_url,omitempty"`
	WebcamURL       string       `json:"webcam_url,omitempty"`
	TicketURL       string       `json:"ticket_url,omitempty"`

	// TrackSetKey resolves the narrated track set for this activity; empty
	// means no audio guide. HasAudioGuide is derived from it.
	TrackSetKey string `json:"track_set_key,omitempty"`
}

// HasAudioGuide reports whether a narrated track set exists for the activity.
func (a *Activity) HasAudioGuide() bool {
	return a.TrackSetKey != ""
}

// IsCritical reports whether the activity is a hard-deadline entry.
func (a *Activity) IsCritical() bool {
	return a.Notes == NotesCritical
}

// IsPriced reports whether the activity carries a nonzero price and therefore
// participates in the paid/pending ledger.
func (a *Activity) IsPriced() bool {
	return a.PriceEUR > 0
}
