package usecase

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/domain/repository"
	"github.com/collection-routing/internal/pkg/errors"
	"github.com/collection-routing/internal/pkg/metrics"
	"github.com/collection-routing/internal/usecase/dto"
	"github.com/collection-routing/internal/validation"
)

// OptimizationUseCase validates optimization requests and tracks the runs sent to the optimizer
type OptimizationUseCase struct {
	validator *validation.Validator
	optimizer repository.OptimizerRepository
	runs      repository.OptimizationRunRepository
	cache     repository.CacheRepository
	streams   repository.StreamRepository
	defaults  dto.RequestDefaults
	statusTTL time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// OptimizationSettings groups the tunables of OptimizationUseCase
type OptimizationSettings struct {
	MaxRadiusKm float64
	Defaults    dto.RequestDefaults
	StatusTTL   time.Duration
}

func NewOptimizationUseCase(
	optimizer repository.OptimizerRepository,
	runs repository.OptimizationRunRepository,
	cache repository.CacheRepository,
	streams repository.StreamRepository,
	settings OptimizationSettings,
	logger *zap.Logger,
) *OptimizationUseCase {
	if settings.StatusTTL <= 0 {
		settings.StatusTTL = time.Hour
	}
	return &OptimizationUseCase{
		validator: validation.New(settings.MaxRadiusKm),
		optimizer: optimizer,
		runs:      runs,
		cache:     cache,
		streams:   streams,
		defaults:  settings.Defaults,
		statusTTL: settings.StatusTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// Validate runs the pre-flight checks without submitting anything.
func (uc *OptimizationUseCase) Validate(ctx context.Context, in *dto.OptimizationRequest) *dto.ValidationResponse {
	req := in.ToDomain(uc.defaults)
	resp, _ := uc.validate(req)
	return resp
}

func (uc *OptimizationUseCase) validate(req domain.OptimizationRequest) (*dto.ValidationResponse, domain.ValidationResult) {
	res := uc.validator.Validate(req)

	outcome := "valid"
	if !res.IsValid {
		outcome = "invalid"
	}
	metrics.Validations.WithLabelValues(outcome).Inc()
	for _, is := range res.Issues() {
		metrics.ValidationIssues.WithLabelValues(string(is.Severity), string(is.Category)).Inc()
	}

	uc.logger.Debug("Optimization request validated",
		zap.String("name", req.Name),
		zap.Int("points", len(req.Points)),
		zap.Int("vehicles", len(req.Vehicles)),
		zap.Bool("is_valid", res.IsValid),
		zap.Int("errors", len(res.Errors)),
		zap.Int("warnings", len(res.Warnings)))

	return &dto.ValidationResponse{
		IsValid:           res.IsValid,
		Errors:            res.Errors,
		Warnings:          res.Warnings,
		Issues:            res.Issues(),
		FormattedErrors:   validation.FormatIssues(res.ErrorIssues, false),
		FormattedWarnings: validation.FormatIssues(res.WarningIssues, true),
	}, res
}

// Submit validates the request and, when it passes, hands it to the optimizer.
// Invalid requests are rejected with ErrValidationFailed carrying the validation response.
func (uc *OptimizationUseCase) Submit(ctx context.Context, in *dto.OptimizationRequest) (*dto.SubmitResponse, error) {
	req := in.ToDomain(uc.defaults)

	validationResp, res := uc.validate(req)
	if !res.IsValid {
		metrics.Submissions.WithLabelValues("rejected").Inc()
		uc.logger.Info("Optimization rejected by validation",
			zap.String("name", req.Name),
			zap.Int("errors", len(res.Errors)))
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"validation": validationResp,
		})
	}

	requestID, err := GenerateRequestID(req, uc.now())
	if err != nil {
		return nil, fmt.Errorf("generate request id: %w", err)
	}

	sub, err := uc.optimizer.Submit(ctx, requestID, &req)
	if err != nil {
		metrics.Submissions.WithLabelValues("failed").Inc()
		uc.logger.Error("Failed to submit optimization",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, fmt.Errorf("submit %s: %w", requestID, errors.ErrOptimizerUnavailable)
	}
	// the optimizer may assign its own id; status polling must use that one
	requestID = sub.RequestID

	run := &domain.OptimizationRun{
		RequestID:    requestID,
		Name:         req.Name,
		Status:       sub.Status,
		PointCount:   len(req.Points),
		VehicleCount: len(req.Vehicles),
		Warnings:     res.Warnings,
		CreatedAt:    uc.now().UTC(),
	}
	if err := uc.runs.Create(ctx, run); err != nil {
		metrics.Submissions.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("store run %s: %w", requestID, errors.ErrDatabaseError)
	}

	uc.cacheStatus(ctx, &domain.OptimizationStatusInfo{
		RequestID: requestID,
		Status:    sub.Status,
		Message:   sub.Message,
	})

	event := domain.OptimizationSubmittedEvent{
		RunID:       run.ID,
		RequestID:   requestID,
		SubmittedAt: run.CreatedAt,
	}
	if err := uc.streams.PublishToStream(ctx, domain.StreamOptimizationSubmitted, event); err != nil {
		// the status worker also sweeps pending runs from the database
		uc.logger.Warn("Failed to publish submitted event",
			zap.String("request_id", requestID),
			zap.Error(err))
	}

	metrics.Submissions.WithLabelValues("accepted").Inc()
	uc.logger.Info("Optimization submitted",
		zap.String("request_id", requestID),
		zap.String("run_id", run.ID.String()),
		zap.Int("warnings", len(res.Warnings)))

	return &dto.SubmitResponse{
		RequestID: requestID,
		RunID:     run.ID.String(),
		Status:    sub.Status,
		Message:   sub.Message,
		Warnings:  res.Warnings,
	}, nil
}

// Status returns the latest known status: cache first, then the stored run, then the optimizer.
func (uc *OptimizationUseCase) Status(ctx context.Context, requestID string) (*domain.OptimizationStatusInfo, error) {
	cached, err := uc.cache.GetStatus(ctx, requestID)
	if err != nil {
		uc.logger.Warn("Status cache unavailable", zap.String("request_id", requestID), zap.Error(err))
	}
	if cached != nil && cached.Status.IsTerminal() {
		return cached, nil
	}

	run, err := uc.runs.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", requestID, errors.ErrDatabaseError)
	}
	if run != nil && run.Status.IsTerminal() {
		info := statusFromRun(run)
		uc.cacheStatus(ctx, info)
		return info, nil
	}

	info, err := uc.Refresh(ctx, requestID)
	switch {
	case err == nil:
		return info, nil
	case stderrors.Is(err, domain.ErrRunNotFound) && run == nil:
		return nil, errors.ErrOptimizationNotFound
	case cached != nil:
		return cached, nil
	case run != nil:
		return statusFromRun(run), nil
	default:
		return nil, fmt.Errorf("status %s: %w", requestID, errors.ErrOptimizerUnavailable)
	}
}

// Refresh asks the optimizer for the current status and records it.
// Terminal statuses are persisted on the run, every status is cached.
func (uc *OptimizationUseCase) Refresh(ctx context.Context, requestID string) (*domain.OptimizationStatusInfo, error) {
	info, err := uc.optimizer.Status(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if info.Status.IsTerminal() {
		err := uc.runs.UpdateStatus(ctx, requestID, info.Status, info.Result, info.Error)
		if err != nil && !stderrors.Is(err, domain.ErrRunNotFound) {
			return nil, fmt.Errorf("persist status %s: %w", requestID, err)
		}
	}
	uc.cacheStatus(ctx, info)

	return info, nil
}

// Finish marks a run that never reached a terminal status as failed.
func (uc *OptimizationUseCase) Finish(ctx context.Context, requestID, reason string) (*domain.OptimizationStatusInfo, error) {
	info := &domain.OptimizationStatusInfo{
		RequestID: requestID,
		Status:    domain.StatusError,
		Error:     reason,
	}
	if err := uc.runs.UpdateStatus(ctx, requestID, info.Status, nil, reason); err != nil {
		return nil, fmt.Errorf("persist status %s: %w", requestID, err)
	}
	uc.cacheStatus(ctx, info)
	return info, nil
}

// PendingRuns lists runs still waiting for the optimizer.
func (uc *OptimizationUseCase) PendingRuns(ctx context.Context, limit int) ([]*domain.OptimizationRun, error) {
	return uc.runs.ListPending(ctx, limit)
}

func (uc *OptimizationUseCase) cacheStatus(ctx context.Context, info *domain.OptimizationStatusInfo) {
	if err := uc.cache.SetStatus(ctx, info, uc.statusTTL); err != nil {
		// the run row is the source of truth
		uc.logger.Warn("Failed to cache status",
			zap.String("request_id", info.RequestID),
			zap.Error(err))
	}
}

func statusFromRun(run *domain.OptimizationRun) *domain.OptimizationStatusInfo {
	info := &domain.OptimizationStatusInfo{
		RequestID: run.RequestID,
		Status:    run.Status,
		Result:    run.Result,
		Error:     run.Error,
	}
	if run.Status.IsTerminal() {
		completed := run.UpdatedAt
		info.CompletedAt = &completed
	}
	return info
}

// GenerateRequestID derives "opt_<unix>_<hash8>" from the request content and submission time.
func GenerateRequestID(req domain.OptimizationRequest, at time.Time) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := md5.Sum(body)
	return fmt.Sprintf("opt_%d_%s", at.Unix(), hex.EncodeToString(sum[:])[:8]), nil
}
