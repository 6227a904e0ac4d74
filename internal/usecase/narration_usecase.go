package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/content"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain/repository"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase/dto"
)

// Playback slot states.
const (
	NarrationIdle    = "idle"
	NarrationPlaying = "playing"
)

// Voice parameters per script source.
const (
	guideLang       = "en-US"
	guideRate       = 1.0
	phrasebookLang  = "no-NO"
	phrasebookRate  = 0.9
	narrationSource = "guide"
)

// NarrationUseCase is the single-slot playback state machine. Starting a
// track while another is playing supersedes it atomically: the old utterance
// is cancelled and its completion callback never observes the slot. The slot
// generation guards against a stale completion clearing a newer track.
type NarrationUseCase struct {
	store  *content.Store
	speech repository.SpeechRepository
	logger *zap.Logger
	now    func() time.Time

	mu         sync.Mutex
	generation uint64
	state      string
	source     string
	activityID string
	trackID    int
	title      string
	startedAt  time.Time
}

func NewNarrationUseCase(
	store *content.Store,
	speech repository.SpeechRepository,
	logger *zap.Logger,
) *NarrationUseCase {
	return &NarrationUseCase{
		store:  store,
		speech: speech,
		logger: logger,
		now:    time.Now,
		state:  NarrationIdle,
	}
}

// GetAudioGuide returns the track set of an activity, or an error when the
// activity is unknown or silent.
func (uc *NarrationUseCase) GetAudioGuide(ctx context.Context, activityID string) (*dto.AudioGuideResponse, error) {
	a := uc.store.Activity(activityID)
	if a == nil {
		return nil, errors.ErrActivityNotFound
	}

	ts := uc.store.TrackSetFor(a)
	if ts == nil {
		return nil, errors.ErrTrackSetNotFound
	}

	return &dto.AudioGuideResponse{
		ActivityID: activityID,
		Key:        ts.Key,
		Title:      ts.Title,
		Tracks:     ts.Tracks,
	}, nil
}

// Play starts one track, superseding any in-flight narration.
func (uc *NarrationUseCase) Play(ctx context.Context, req *dto.PlayRequest) (*dto.NarrationStatusResponse, error) {
	text, title, lang, rate, err := uc.resolve(req)
	if err != nil {
		return nil, err
	}

	// The lock spans both the slot bookkeeping and the engine call, so two
	// concurrent plays cannot commit in one order and reach the engine in
	// the other. The engine never calls onDone while Speak is in flight.
	uc.mu.Lock()
	uc.generation++
	gen := uc.generation
	uc.state = NarrationPlaying
	uc.source = req.Source
	uc.activityID = req.ActivityID
	uc.trackID = req.TrackID
	uc.title = title
	uc.startedAt = uc.now()

	onDone := func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		if gen != uc.generation {
			return
		}
		uc.state = NarrationIdle
		uc.logger.Debug("Narration finished", zap.String("title", title))
	}

	if err := uc.speech.Speak(ctx, text, lang, rate, onDone); err != nil {
		uc.state = NarrationIdle
		uc.mu.Unlock()
		uc.logger.Error("Failed to start narration", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	uc.mu.Unlock()

	uc.logger.Info("Narration started",
		zap.String("source", req.Source),
		zap.String("title", title),
		zap.String("lang", lang))

	return uc.GetStatus(ctx), nil
}

// Stop cancels any in-flight narration. Stopping an idle slot is a no-op.
func (uc *NarrationUseCase) Stop(ctx context.Context) *dto.NarrationStatusResponse {
	uc.speech.Cancel()

	uc.mu.Lock()
	uc.generation++
	wasPlaying := uc.state == NarrationPlaying
	uc.state = NarrationIdle
	uc.mu.Unlock()

	if wasPlaying {
		uc.logger.Info("Narration stopped")
	}

	return uc.GetStatus(ctx)
}

// GetStatus returns the playback slot as observed now.
func (uc *NarrationUseCase) GetStatus(ctx context.Context) *dto.NarrationStatusResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	resp := &dto.NarrationStatusResponse{State: uc.state}
	if uc.state == NarrationPlaying {
		resp.Source = uc.source
		resp.ActivityID = uc.activityID
		resp.TrackID = uc.trackID
		resp.Title = uc.title
		resp.StartedAt = uc.startedAt.Format(time.RFC3339)
	}
	return resp
}

// resolve maps a play request onto the script text and voice parameters.
func (uc *NarrationUseCase) resolve(req *dto.PlayRequest) (text, title, lang string, rate float64, err error) {
	if req.Source == narrationSource {
		a := uc.store.Activity(req.ActivityID)
		if a == nil {
			return "", "", "", 0, errors.ErrActivityNotFound
		}
		ts := uc.store.TrackSetFor(a)
		if ts == nil {
			return "", "", "", 0, errors.ErrTrackSetNotFound
		}
		track := ts.Track(req.TrackID)
		if track == nil {
			return "", "", "", 0, errors.ErrTrackNotFound
		}
		return track.Text, track.Title, guideLang, guideRate, nil
	}

	// Phrasebook entries are read in the local language, slowed down
	for _, p := range uc.store.Phrasebook() {
		if p.Word == req.Word {
			return p.Word, p.Word, phrasebookLang, phrasebookRate, nil
		}
	}
	return "", "", "", 0, errors.ErrTrackNotFound
}
