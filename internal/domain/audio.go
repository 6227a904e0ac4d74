package domain

// AudioTrack is one narrated script. Immutable static content.
type AudioTrack struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// TrackSet is a named group of narrated tracks resolved through an activity's
// TrackSetKey.
type TrackSet struct {
	Key    string       `json:"key"`
	Title  string       `json:"title"`
	Tracks []AudioTrack `json:"tracks"`
}

// Track returns the track with the given id, or nil.
func (ts *TrackSet) Track(id int) *AudioTrack {
	for i := range ts.Tracks {
		if ts.Tracks[i].ID == id {
			return &ts.Tracks[i]
		}
	}
	return nil
}

// Pronunciation is one phrasebook entry read aloud in the local language.
type Pronunciation struct {
	Word       string `json:"word"`
	Phonetic   string `json:"phonetic"`
	Simplified string `json:"simplified"`
	Meaning    string `json:"meaning"`
}
