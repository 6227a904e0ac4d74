package position

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/state"
)

// fakeStreamRepo serves queued batches and records acks.
type fakeStreamRepo struct {
	mu      sync.Mutex
	batches [][]domain.StreamMessage
	acked   []string
}

func (f *fakeStreamRepo) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return nil
}

func (f *fakeStreamRepo) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.batches) == 0 {
		return nil, nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch, nil
}

func (f *fakeStreamRepo) AckMessage(ctx context.Context, stream, group, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, id)
	return nil
}

func (f *fakeStreamRepo) PublishPosition(ctx context.Context, stream string, fix *domain.PositionFix) error {
	return nil
}

func (f *fakeStreamRepo) ackedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.acked))
	copy(out, f.acked)
	return out
}

func msg(id, payload string) domain.StreamMessage {
	return domain.StreamMessage{
		ID:   id,
		Data: map[string]interface{}{"data": payload},
	}
}

func TestWorker_ProcessBatch(t *testing.T) {
	logger := zap.NewNop()

	t.Run("latest valid fix wins", func(t *testing.T) {
		repo := &fakeStreamRepo{batches: [][]domain.StreamMessage{{
			msg("1-0", `{"lat":62.08,"lng":6.87}`),
			msg("2-0", `{"lat":62.10,"lng":7.20}`),
		}}}
		appState := state.New(11.8)
		w := NewWorker(repo, appState, "test-group", logger)

		processed, err := w.processBatch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, processed)

		fix := appState.Position()
		require.NotNil(t, fix)
		assert.Equal(t, 62.10, fix.Lat)
		assert.Equal(t, []string{"1-0", "2-0"}, repo.ackedIDs())
	})

	t.Run("bad fixes are acked and skipped", func(t *testing.T) {
		repo := &fakeStreamRepo{batches: [][]domain.StreamMessage{{
			msg("1-0", `{"lat":62.08,"lng":6.87}`),
			msg("2-0", `not json`),
			msg("3-0", `{"lat":999,"lng":6.87}`),
		}}}
		appState := state.New(11.8)
		w := NewWorker(repo, appState, "test-group", logger)

		processed, err := w.processBatch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, processed)

		// Only the valid fix lands; the poisoned ones are acked anyway
		fix := appState.Position()
		require.NotNil(t, fix)
		assert.Equal(t, 62.08, fix.Lat)
		assert.Len(t, repo.ackedIDs(), 3)
	})

	t.Run("empty batch leaves state untouched", func(t *testing.T) {
		repo := &fakeStreamRepo{}
		appState := state.New(11.8)
		w := NewWorker(repo, appState, "test-group", logger)

		processed, err := w.processBatch(context.Background())
		require.NoError(t, err)
		assert.Zero(t, processed)
		assert.Nil(t, appState.Position())
	})
}

func TestWorker_StartStop(t *testing.T) {
	repo := &fakeStreamRepo{}
	appState := state.New(11.8)
	w := NewWorker(repo, appState, "test-group", zap.NewNop())

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
