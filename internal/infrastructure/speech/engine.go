package speech

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/config"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain/repository"
)

// minUtterance keeps zero-word or ultra-short texts from completing before
// the caller has even observed the playing state.
const minUtterance = 500 * time.Millisecond

// Engine is an in-process stand-in for a platform text-to-speech voice. It
// estimates utterance duration from word count and the configured reading
// speed, then fires the completion callback on a timer. Starting a new
// utterance or cancelling bumps a generation counter, so a timer belonging to
// a superseded utterance finds itself stale and never calls back.
type Engine struct {
	mu             sync.Mutex
	generation     uint64
	timer          *time.Timer
	wordsPerMinute int
	logger         *zap.Logger
}

// NewEngine creates the speech engine.
func NewEngine(cfg *config.NarrationConfig, logger *zap.Logger) repository.SpeechRepository {
	return &Engine{
		wordsPerMinute: cfg.WordsPerMinute,
		logger:         logger,
	}
}

// Speak starts reading text aloud and returns immediately. Any in-flight
// utterance is cancelled first; its callback will never fire.
func (e *Engine) Speak(ctx context.Context, text, lang string, rate float64, onDone func()) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("utterance text is empty")
	}
	if rate <= 0 {
		rate = 1.0
	}

	duration := e.estimate(text, rate)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.generation++
	gen := e.generation

	e.logger.Debug("Starting utterance",
		zap.String("lang", lang),
		zap.Float64("rate", rate),
		zap.Duration("estimated_duration", duration))

	e.timer = time.AfterFunc(duration, func() {
		e.mu.Lock()
		stale := gen != e.generation
		if !stale {
			e.timer = nil
		}
		e.mu.Unlock()

		if stale || onDone == nil {
			return
		}
		onDone()
	})

	return nil
}

// Cancel stops any in-flight utterance. Safe to call when idle.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.generation++
}

func (e *Engine) estimate(text string, rate float64) time.Duration {
	words := len(strings.Fields(text))
	wpm := float64(e.wordsPerMinute) * rate
	if wpm <= 0 {
		wpm = 150
	}
	d := time.Duration(float64(words) / wpm * float64(time.Minute))
	if d < minUtterance {
		d = minUtterance
	}
	return d
}
