package speech

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/config"
)

func newTestEngine() *Engine {
	logger, _ := zap.NewDevelopment()
	// Absurdly fast reading speed keeps the tests quick.
	return NewEngine(&config.NarrationConfig{WordsPerMinute: 100000}, logger).(*Engine)
}

func TestEngine_Speak(t *testing.T) {
	t.Run("completion fires once", func(t *testing.T) {
		e := newTestEngine()
		var done int32

		err := e.Speak(context.Background(), "two words", "en", 1.0, func() {
			atomic.AddInt32(&done, 1)
		})
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			return atomic.LoadInt32(&done) == 1
		}, 2*time.Second, 10*time.Millisecond)

		time.Sleep(600 * time.Millisecond)
		assert.Equal(t, int32(1), atomic.LoadInt32(&done))
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		e := newTestEngine()
		err := e.Speak(context.Background(), "   ", "en", 1.0, nil)
		assert.Error(t, err)
	})

	t.Run("cancel suppresses completion", func(t *testing.T) {
		e := newTestEngine()
		var done int32

		err := e.Speak(context.Background(), "some narration text", "en", 1.0, func() {
			atomic.AddInt32(&done, 1)
		})
		require.NoError(t, err)

		e.Cancel()

		time.Sleep(700 * time.Millisecond)
		assert.Equal(t, int32(0), atomic.LoadInt32(&done))
	})

	t.Run("superseded utterance never completes", func(t *testing.T) {
		e := newTestEngine()
		var first, second int32

		require.NoError(t, e.Speak(context.Background(), "first track text", "en", 1.0, func() {
			atomic.AddInt32(&first, 1)
		}))
		require.NoError(t, e.Speak(context.Background(), "second track text", "en", 1.0, func() {
			atomic.AddInt32(&second, 1)
		}))

		assert.Eventually(t, func() bool {
			return atomic.LoadInt32(&second) == 1
		}, 2*time.Second, 10*time.Millisecond)
		assert.Equal(t, int32(0), atomic.LoadInt32(&first))
	})

	t.Run("cancel when idle is safe", func(t *testing.T) {
		e := newTestEngine()
		e.Cancel()
		e.Cancel()
	})
}
