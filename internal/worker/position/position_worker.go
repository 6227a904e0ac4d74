package position

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain/repository"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/state"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/worker"
)

const (
	maxBatchSize    = 20
	emptyQueueSleep = 100 * time.Millisecond
)

// Worker drains the position stream and keeps AppState pointed at the latest
// fix. Bad fixes are logged, acked and skipped; the subscription keeps
// running.
type Worker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	appState     *state.AppState
	consumerName string
}

func NewWorker(
	streamRepo repository.StreamRepository,
	appState *state.AppState,
	consumerGroup string,
	logger *zap.Logger,
) *Worker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &Worker{
		BaseWorker:   worker.NewBaseWorker("position-updates", consumerGroup, logger),
		streamRepo:   streamRepo,
		appState:     appState,
		consumerName: consumerName,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting position worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPositionUpdates, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads and applies up to maxBatchSize position fixes. Only the
// last valid fix of the batch matters; earlier ones are superseded anyway.
func (w *Worker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamPositionUpdates,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	var latest *domain.PositionFix
	for _, msg := range messages {
		fix, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse position message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		} else {
			latest = fix
		}
		// ACK everything, bad fixes included, so the stream never jams
		if err := w.streamRepo.AckMessage(ctx, domain.StreamPositionUpdates, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Warn("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	if latest != nil {
		w.appState.SetPosition(latest)
		logger.Debug("Position updated",
			zap.Float64("lat", latest.Lat),
			zap.Float64("lng", latest.Lng))
	}

	return len(messages), nil
}

func (w *Worker) parseMessage(msg domain.StreamMessage) (*domain.PositionFix, error) {
	raw, ok := msg.Data["data"].(string)
	if !ok {
		return nil, fmt.Errorf("message does not contain 'data' field")
	}

	var fix domain.PositionFix
	if err := json.Unmarshal([]byte(raw), &fix); err != nil {
		return nil, fmt.Errorf("failed to unmarshal position fix: %w", err)
	}

	if !utils.ValidateCoordinates(fix.Lat, fix.Lng) {
		return nil, fmt.Errorf("coordinates out of range: %f, %f", fix.Lat, fix.Lng)
	}

	if fix.ReportedAt.IsZero() {
		fix.ReportedAt = time.Now()
	}

	return &fix, nil
}
