package repository

import (
	"context"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
)

// StreamRepository carries device position fixes over a Redis stream.
type StreamRepository interface {
	// CreateConsumerGroup creates the consumer group for a stream, tolerating
	// one that already exists.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages for the consumer.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges a processed (or poisoned) message.
	AckMessage(ctx context.Context, stream, group, id string) error

	// PublishPosition appends a position fix to the stream.
	PublishPosition(ctx context.Context, stream string, fix *domain.PositionFix) error
}
