package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/content"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase/dto"
)

// fakeSpeech records utterances and hands the completion callback to the
// test, so completion timing is fully controlled.
type fakeSpeech struct {
	mu         sync.Mutex
	utterances []fakeUtterance
	cancels    int
}

type fakeUtterance struct {
	text   string
	lang   string
	rate   float64
	onDone func()
}

func (f *fakeSpeech) Speak(ctx context.Context, text, lang string, rate float64, onDone func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.utterances = append(f.utterances, fakeUtterance{text: text, lang: lang, rate: rate, onDone: onDone})
	return nil
}

func (f *fakeSpeech) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
}

func (f *fakeSpeech) last() fakeUtterance {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.utterances[len(f.utterances)-1]
}

func newNarrationUC(t *testing.T) (*NarrationUseCase, *fakeSpeech) {
	t.Helper()
	speech := &fakeSpeech{}
	return NewNarrationUseCase(content.NewStore(), speech, zap.NewNop()), speech
}

func TestNarrationUseCase_GetAudioGuide(t *testing.T) {
	ctx := context.Background()
	uc, _ := newNarrationUC(t)

	t.Run("activity with audio guide", func(t *testing.T) {
		resp, err := uc.GetAudioGuide(ctx, "4")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Tracks)
		assert.NotEmpty(t, resp.Title)
	})

	t.Run("silent activity", func(t *testing.T) {
		_, err := uc.GetAudioGuide(ctx, "0")
		assert.ErrorIs(t, err, errors.ErrTrackSetNotFound)
	})

	t.Run("unknown activity", func(t *testing.T) {
		_, err := uc.GetAudioGuide(ctx, "99")
		assert.ErrorIs(t, err, errors.ErrActivityNotFound)
	})
}

func TestNarrationUseCase_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("guide track uses the English voice", func(t *testing.T) {
		uc, speech := newNarrationUC(t)

		resp, err := uc.Play(ctx, &dto.PlayRequest{Source: "guide", ActivityID: "4", TrackID: 1})
		require.NoError(t, err)
		assert.Equal(t, NarrationPlaying, resp.State)
		assert.Equal(t, "4", resp.ActivityID)

		u := speech.last()
		assert.Equal(t, "en-US", u.lang)
		assert.Equal(t, 1.0, u.rate)
		assert.NotEmpty(t, u.text)
	})

	t.Run("phrasebook word uses the Norwegian voice slowed down", func(t *testing.T) {
		uc, speech := newNarrationUC(t)

		entries := content.NewStore().Phrasebook()
		require.NotEmpty(t, entries)

		resp, err := uc.Play(ctx, &dto.PlayRequest{Source: "phrasebook", Word: entries[0].Word})
		require.NoError(t, err)
		assert.Equal(t, NarrationPlaying, resp.State)

		u := speech.last()
		assert.Equal(t, "no-NO", u.lang)
		assert.Equal(t, 0.9, u.rate)
	})

	t.Run("natural completion frees the slot", func(t *testing.T) {
		uc, speech := newNarrationUC(t)

		_, err := uc.Play(ctx, &dto.PlayRequest{Source: "guide", ActivityID: "4", TrackID: 1})
		require.NoError(t, err)

		speech.last().onDone()
		assert.Equal(t, NarrationIdle, uc.GetStatus(ctx).State)
	})

	t.Run("superseded completion never clears the new track", func(t *testing.T) {
		uc, speech := newNarrationUC(t)

		_, err := uc.Play(ctx, &dto.PlayRequest{Source: "guide", ActivityID: "4", TrackID: 1})
		require.NoError(t, err)
		first := speech.last()

		_, err = uc.Play(ctx, &dto.PlayRequest{Source: "guide", ActivityID: "4", TrackID: 2})
		require.NoError(t, err)

		// Stale completion from the first track fires late
		first.onDone()

		status := uc.GetStatus(ctx)
		assert.Equal(t, NarrationPlaying, status.State)
		assert.Equal(t, 2, status.TrackID)
	})

	t.Run("unknown track", func(t *testing.T) {
		uc, _ := newNarrationUC(t)

		_, err := uc.Play(ctx, &dto.PlayRequest{Source: "guide", ActivityID: "4", TrackID: 99})
		assert.ErrorIs(t, err, errors.ErrTrackNotFound)
		assert.Equal(t, NarrationIdle, uc.GetStatus(ctx).State)
	})
}

func TestNarrationUseCase_Stop(t *testing.T) {
	ctx := context.Background()
	uc, speech := newNarrationUC(t)

	_, err := uc.Play(ctx, &dto.PlayRequest{Source: "guide", ActivityID: "4", TrackID: 1})
	require.NoError(t, err)

	resp := uc.Stop(ctx)
	assert.Equal(t, NarrationIdle, resp.State)
	assert.Equal(t, 1, speech.cancels)

	// Stopping when idle stays idle
	resp = uc.Stop(ctx)
	assert.Equal(t, NarrationIdle, resp.State)
}

func TestNarrationUseCase_ConcurrentPlaysStayConsistent(t *testing.T) {
	ctx := context.Background()
	uc, speech := newNarrationUC(t)

	store := content.NewStore()
	ts := store.TrackSetFor(store.Activity("4"))
	require.NotNil(t, ts)

	// Whatever order the races resolve in, the slot and the engine must
	// agree: the last utterance handed to the engine is the one the status
	// reports.
	var wg sync.WaitGroup
	for _, track := range ts.Tracks {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := uc.Play(ctx, &dto.PlayRequest{Source: "guide", ActivityID: "4", TrackID: id})
			assert.NoError(t, err)
		}(track.ID)
	}
	wg.Wait()

	status := uc.GetStatus(ctx)
	require.Equal(t, NarrationPlaying, status.State)

	committed := ts.Track(status.TrackID)
	require.NotNil(t, committed)
	assert.Equal(t, committed.Text, speech.last().text)
}
