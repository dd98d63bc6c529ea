package repository

import (
	"context"
	"time"

	"github.com/collection-routing/internal/domain"
)

// CacheRepository is a byte-level key/value cache with typed helpers for run statuses
type CacheRepository interface {
	// Get returns nil, nil on a miss
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	// GetStatus returns nil, nil when the status is not cached
	GetStatus(ctx context.Context, requestID string) (*domain.OptimizationStatusInfo, error)

	SetStatus(ctx context.Context, status *domain.OptimizationStatusInfo, ttl time.Duration) error
}
