package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
)

func TestNewStore_Itinerary(t *testing.T) {
	s := NewStore()
	activities := s.Activities()
	require.NotEmpty(t, activities)

	t.Run("ascending start order", func(t *testing.T) {
		for i := 1; i < len(activities); i++ {
			prev := activities[i-1].StartTime.MinuteOfDay()
			cur := activities[i].StartTime.MinuteOfDay()
			assert.GreaterOrEqual(t, cur, prev, "entry %s starts before %s", activities[i].ID, activities[i-1].ID)
		}
	})

	t.Run("windows never end before they start", func(t *testing.T) {
		for _, a := range activities {
			assert.GreaterOrEqual(t, a.EndTime.MinuteOfDay(), a.StartTime.MinuteOfDay(), "entry %s", a.ID)
		}
	})

	t.Run("unique ids resolvable by lookup", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, a := range activities {
			assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
			seen[a.ID] = true
			assert.Same(t, a, s.Activity(a.ID))
		}
	})

	t.Run("unknown id resolves to nil", func(t *testing.T) {
		assert.Nil(t, s.Activity("does-not-exist"))
	})

	t.Run("planned prices sum to the day budget", func(t *testing.T) {
		var total float64
		for _, a := range activities {
			if a.IsPriced() {
				total += a.PriceEUR
			}
		}
		assert.InDelta(t, 127, total, 0.0001)
	})

	t.Run("exactly one critical deadline", func(t *testing.T) {
		var critical []*domain.Activity
		for _, a := range activities {
			if a.IsCritical() {
				critical = append(critical, a)
			}
		}
		require.Len(t, critical, 1)
		assert.Equal(t, "20:30", critical[0].StartTime.String())
	})
}

func TestNewStore_TrackSets(t *testing.T) {
	s := NewStore()

	t.Run("every audio key resolves", func(t *testing.T) {
		for _, a := range s.Activities() {
			if !a.HasAudioGuide() {
				continue
			}
			ts := s.TrackSetFor(a)
			require.NotNil(t, ts, "activity %s references track set %q", a.ID, a.TrackSetKey)
			assert.NotEmpty(t, ts.Tracks, "track set %q", a.TrackSetKey)
		}
	})

	t.Run("tracks are numbered from one without gaps", func(t *testing.T) {
		ts := s.TrackSet(TrackSetGeirangerFerry)
		require.NotNil(t, ts)
		for i, tr := range ts.Tracks {
			assert.Equal(t, i+1, tr.ID)
			assert.NotEmpty(t, tr.Text)
		}
	})

	t.Run("silent activity has no track set", func(t *testing.T) {
		a := s.Activity("0")
		require.NotNil(t, a)
		assert.Nil(t, s.TrackSetFor(a))
	})
}

func TestNewStore_Phrasebook(t *testing.T) {
	s := NewStore()
	entries := s.Phrasebook()
	require.NotEmpty(t, entries)

	for _, e := range entries {
		assert.NotEmpty(t, e.Word)
		assert.NotEmpty(t, e.Phonetic)
		assert.NotEmpty(t, e.Meaning)
	}
}

func TestNewStore_ExtraPOIs(t *testing.T) {
	s := NewStore()
	for _, p := range s.ExtraPOIs() {
		assert.NotEmpty(t, p.Title)
		assert.NotZero(t, p.Coords.Lat)
	}
}
