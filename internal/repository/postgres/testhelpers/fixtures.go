package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/collection-routing/internal/domain"
)

// InsertRun inserts a run row directly, bypassing the repository
func InsertRun(ctx context.Context, tdb *TestDB, requestID string, status domain.OptimizationStatus, createdAt time.Time) (uuid.UUID, error) {
	id := uuid.New()
	_, err := tdb.DB.ExecContext(ctx, `
		INSERT INTO optimization_runs (id, request_id, name, status, warnings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`, id, requestID, "fixture "+requestID, string(status), pq.Array([]string{}), createdAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert run fixture %s: %w", requestID, err)
	}
	return id, nil
}
