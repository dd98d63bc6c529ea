package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/domain/repository"
)

type optimizationRunRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewOptimizationRunRepository(db *DB, logger *zap.Logger) repository.OptimizationRunRepository {
	return &optimizationRunRepository{
		db:     db,
		logger: logger,
	}
}

// runRow is the table shape; arrays and jsonb need driver-aware types
type runRow struct {
	ID           uuid.UUID      `db:"id"`
	RequestID    string         `db:"request_id"`
	Name         string         `db:"name"`
	Status       string         `db:"status"`
	PointCount   int            `db:"point_count"`
	VehicleCount int            `db:"vehicle_count"`
	Warnings     pq.StringArray `db:"warnings"`
	Error        string         `db:"error"`
	Result       []byte         `db:"result"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r runRow) toDomain() *domain.OptimizationRun {
	run := &domain.OptimizationRun{
		ID:           r.ID,
		RequestID:    r.RequestID,
		Name:         r.Name,
		Status:       domain.OptimizationStatus(r.Status),
		PointCount:   r.PointCount,
		VehicleCount: r.VehicleCount,
		Warnings:     []string(r.Warnings),
		Error:        r.Error,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if len(r.Result) > 0 {
		run.Result = json.RawMessage(r.Result)
	}
	if run.Warnings == nil {
		run.Warnings = []string{}
	}
	return run
}

const selectRunColumns = `
	SELECT id, request_id, name, status, point_count, vehicle_count,
	       warnings, error, result, created_at, updated_at
	FROM optimization_runs
`

func (r *optimizationRunRepository) Create(ctx context.Context, run *domain.OptimizationRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	now := time.Now().UTC()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = now
	}
	run.UpdatedAt = now

	query := `
		INSERT INTO optimization_runs
			(id, request_id, name, status, point_count, vehicle_count, warnings, error, result, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.RequestID, run.Name, string(run.Status),
		run.PointCount, run.VehicleCount, pq.Array(run.Warnings), run.Error,
		nullableJSON(run.Result), run.CreatedAt, run.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create optimization run",
			zap.String("request_id", run.RequestID),
			zap.Error(err))
		return fmt.Errorf("insert optimization run: %w", err)
	}

	return nil
}

func (r *optimizationRunRepository) GetByRequestID(ctx context.Context, requestID string) (*domain.OptimizationRun, error) {
	var row runRow
	err := r.db.GetContext(ctx, &row, selectRunColumns+" WHERE request_id = $1", requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get optimization run",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, fmt.Errorf("get optimization run: %w", err)
	}

	return row.toDomain(), nil
}

func (r *optimizationRunRepository) UpdateStatus(
	ctx context.Context,
	requestID string,
	status domain.OptimizationStatus,
	result json.RawMessage,
	errMsg string,
) error {
	query := `
		UPDATE optimization_runs
		SET status = $2, result = COALESCE($3, result), error = $4, updated_at = NOW()
		WHERE request_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, requestID, string(status), nullableJSON(result), errMsg)
	if err != nil {
		r.logger.Error("Failed to update optimization run",
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("update optimization run: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update optimization run: %w", err)
	}
	if affected == 0 {
		return domain.ErrRunNotFound
	}

	return nil
}

func (r *optimizationRunRepository) ListPending(ctx context.Context, limit int) ([]*domain.OptimizationRun, error) {
	var rows []runRow
	err := r.db.SelectContext(ctx, &rows,
		selectRunColumns+" WHERE status = $1 ORDER BY created_at LIMIT $2",
		string(domain.StatusProcessing), limit)
	if err != nil {
		r.logger.Error("Failed to list pending optimization runs", zap.Error(err))
		return nil, fmt.Errorf("list pending optimization runs: %w", err)
	}

	runs := make([]*domain.OptimizationRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, row.toDomain())
	}
	return runs, nil
}

// nullableJSON maps an empty payload to SQL NULL so COALESCE keeps the stored value.
func nullableJSON(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
