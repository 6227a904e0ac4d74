package content

import (
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
)

// Store is the read-only reference data of the port call: the itinerary, the
// narrated track sets, the phrasebook and the extra map points. Everything is
// compiled in and hand-authored; nothing here is validated or generated at
// runtime.
type Store struct {
	activities []*domain.Activity
	byID       map[string]*domain.Activity
	trackSets  map[string]*domain.TrackSet
	phrasebook []domain.Pronunciation
	extraPOIs  []POI
}

// POI is a named map point that is not itself an itinerary entry.
type POI struct {
	Title  string            `json:"title"`
	Coords domain.Coordinate `json:"coords"`
}

// NewStore builds the store from the static dataset. Activities are authored
// in ascending start order; the store preserves that order and never re-sorts.
func NewStore() *Store {
	s := &Store{
		activities: initialItinerary(),
		trackSets:  trackSets(),
		phrasebook: pronunciations(),
		extraPOIs:  extraPOIs(),
	}

	s.byID = make(map[string]*domain.Activity, len(s.activities))
	for _, a := range s.activities {
		s.byID[a.ID] = a
	}

	return s
}

// Activities returns the itinerary in its fixed ascending start order.
func (s *Store) Activities() []*domain.Activity {
	return s.activities
}

// Activity returns the entry with the given id, or nil.
func (s *Store) Activity(id string) *domain.Activity {
	return s.byID[id]
}

// TrackSet resolves a narrated track set by key, or nil.
func (s *Store) TrackSet(key string) *domain.TrackSet {
	return s.trackSets[key]
}

// TrackSetFor resolves the track set of an activity through its TrackSetKey.
func (s *Store) TrackSetFor(a *domain.Activity) *domain.TrackSet {
	if a == nil || !a.HasAudioGuide() {
		return nil
	}
	return s.trackSets[a.TrackSetKey]
}

// Phrasebook returns the pronunciation list.
func (s *Store) Phrasebook() []domain.Pronunciation {
	return s.phrasebook
}

// ExtraPOIs returns the additional map markers.
func (s *Store) ExtraPOIs() []POI {
	return s.extraPOIs
}
