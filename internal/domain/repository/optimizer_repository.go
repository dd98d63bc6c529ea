package repository

import (
	"context"

	"github.com/collection-routing/internal/domain"
)

// OptimizerRepository talks to the remote route optimizer
type OptimizerRepository interface {
	// Submit sends a validated request under requestID
	Submit(ctx context.Context, requestID string, req *domain.OptimizationRequest) (*domain.OptimizerSubmission, error)

	// Status returns domain.ErrRunNotFound when the optimizer does not know requestID
	Status(ctx context.Context, requestID string) (*domain.OptimizationStatusInfo, error)
}
