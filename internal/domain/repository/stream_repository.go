package repository

import (
	"context"
	"time"

	"github.com/collection-routing/internal/domain"
)

// StreamRepository - Redis Streams access
type StreamRepository interface {
	// ConsumeStream reads messages one at a time into a channel until ctx is cancelled
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// ConsumeBatch blocks up to block for at most count messages
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64, block time.Duration) ([]domain.StreamMessage, error)

	AckMessage(ctx context.Context, stream, group, messageID string) error

	AckMessages(ctx context.Context, stream, group string, messageIDs ...string) error

	// CreateConsumerGroup is a no-op when the group already exists
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream JSON-encodes data under the "data" field
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
