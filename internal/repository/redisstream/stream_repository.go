package redisstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain/repository"
)

// consumeBlock bounds one XReadGroup call so the worker loop can observe its
// stop channel between batches.
const consumeBlock = 1 * time.Second

type streamRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewStreamRepository(client *redis.Client, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client: client,
		logger: logger,
	}
}

// CreateConsumerGroup creates the consumer group starting at "$" (new
// messages only). MKSTREAM creates the stream itself when missing; an
// already existing group is not an error.
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil {
		if err.Error() == "BUSYGROUP Consumer Group name already exists" {
			r.logger.Debug("Consumer group already exists",
				zap.String("stream", stream),
				zap.String("group", group))
			return nil
		}
		r.logger.Error("Failed to create consumer group",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group created",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeBatch reads up to count unread messages for the consumer. No new
// messages within the block window is an empty batch, not an error.
func (r *streamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    int64(count),
		Block:    consumeBlock,
	}).Result()

	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Error("Failed to read from stream",
			zap.String("stream", stream),
			zap.Error(err))
		return nil, fmt.Errorf("failed to read from stream: %w", err)
	}

	var messages []domain.StreamMessage
	for _, s := range result {
		for _, msg := range s.Messages {
			data := make(map[string]interface{}, len(msg.Values))
			for k, v := range msg.Values {
				data[k] = v
			}
			messages = append(messages, domain.StreamMessage{
				ID:   msg.ID,
				Data: data,
			})
		}
	}

	if len(messages) > 0 {
		r.logger.Debug("Messages read from stream",
			zap.String("stream", stream),
			zap.Int("count", len(messages)))
	}

	return messages, nil
}

// AckMessage acknowledges a processed message.
func (r *streamRepository) AckMessage(ctx context.Context, stream, group, id string) error {
	if err := r.client.XAck(ctx, stream, group, id).Err(); err != nil {
		r.logger.Error("Failed to ack message",
			zap.String("stream", stream),
			zap.String("message_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to ack message: %w", err)
	}
	return nil
}

// PublishPosition appends a position fix to the stream as a JSON payload
// under the "data" field.
func (r *streamRepository) PublishPosition(ctx context.Context, stream string, fix *domain.PositionFix) error {
	payload, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("marshal position fix: %w", err)
	}

	err = r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{"data": string(payload)},
	}).Err()
	if err != nil {
		r.logger.Error("Failed to publish position",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to publish position: %w", err)
	}

	r.logger.Debug("Position published",
		zap.String("stream", stream),
		zap.Float64("lat", fix.Lat),
		zap.Float64("lng", fix.Lng))
	return nil
}
