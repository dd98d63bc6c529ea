package repository

import (
	"context"
	"encoding/json"

	"github.com/collection-routing/internal/domain"
)

// OptimizationRunRepository persists submitted runs; it is the source of truth for status
type OptimizationRunRepository interface {
	Create(ctx context.Context, run *domain.OptimizationRun) error

	// GetByRequestID returns nil, nil when no run exists
	GetByRequestID(ctx context.Context, requestID string) (*domain.OptimizationRun, error)

	UpdateStatus(ctx context.Context, requestID string, status domain.OptimizationStatus, result json.RawMessage, errMsg string) error

	// ListPending returns runs still in processing, oldest first
	ListPending(ctx context.Context, limit int) ([]*domain.OptimizationRun, error)
}
