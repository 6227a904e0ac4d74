package repository

import "context"

// SpeechRepository is the text-to-speech capability behind narration playback.
type SpeechRepository interface {
	// Speak starts reading text aloud and returns immediately. onDone fires
	// exactly once when the utterance finishes naturally; it never fires for
	// an utterance that was cancelled first.
	Speak(ctx context.Context, text, lang string, rate float64, onDone func()) error

	// Cancel stops any in-flight utterance. Safe to call when idle.
	Cancel()
}
