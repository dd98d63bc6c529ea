package optimization

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/domain/repository"
	"github.com/collection-routing/internal/pkg/metrics"
	"github.com/collection-routing/internal/worker"
)

const (
	emptyQueueSleep = 100 * time.Millisecond
	errorSleep      = time.Second
	sweepInterval   = time.Minute
	sweepLimit      = 100
	timeoutReason   = "Tempo limite excedido aguardando o otimizador"
)

// StatusService is the part of the optimization use case the worker drives
type StatusService interface {
	Refresh(ctx context.Context, requestID string) (*domain.OptimizationStatusInfo, error)
	Finish(ctx context.Context, requestID, reason string) (*domain.OptimizationStatusInfo, error)
	PendingRuns(ctx context.Context, limit int) ([]*domain.OptimizationRun, error)
}

// Settings tune polling and stream consumption
type Settings struct {
	BatchSize    int64
	ReadTimeout  time.Duration
	PollInterval time.Duration
	PollTimeout  time.Duration
	// MaxRetries bounds attempts to publish the done event
	MaxRetries int
}

type job struct {
	runID     uuid.UUID
	requestID string
	since     time.Time
}

// StatusWorker follows submitted runs until the optimizer reports a terminal
// status, then publishes an OptimizationDoneEvent.
//
// Runs reach the worker two ways: the submitted stream, and a periodic sweep
// of runs the database still lists as processing. A run is polled by at most
// one goroutine per worker process.
type StatusWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	statusUC     StatusService
	consumerName string
	settings     Settings

	mu       sync.Mutex
	tracking map[string]struct{}
	pollers  sync.WaitGroup
	now      func() time.Time
}

func NewStatusWorker(
	streamRepo repository.StreamRepository,
	statusUC StatusService,
	consumerGroup string,
	settings Settings,
	logger *zap.Logger,
) *StatusWorker {
	hostname, _ := os.Hostname()

	if settings.BatchSize <= 0 {
		settings.BatchSize = 10
	}
	if settings.PollInterval <= 0 {
		settings.PollInterval = 2 * time.Second
	}
	if settings.PollTimeout <= 0 {
		settings.PollTimeout = 10 * time.Minute
	}
	if settings.MaxRetries <= 0 {
		settings.MaxRetries = 3
	}

	return &StatusWorker{
		BaseWorker:   worker.NewBaseWorker("optimization-status", consumerGroup, logger),
		streamRepo:   streamRepo,
		statusUC:     statusUC,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		settings:     settings,
		tracking:     make(map[string]struct{}),
		now:          time.Now,
	}
}

func (w *StatusWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting optimization status worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Duration("poll_interval", w.settings.PollInterval),
		zap.Duration("poll_timeout", w.settings.PollTimeout))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamOptimizationSubmitted, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}
	defer w.pollers.Wait()

	w.sweep(ctx)
	lastSweep := w.now()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		if w.now().Sub(lastSweep) >= sweepInterval {
			w.sweep(ctx)
			lastSweep = w.now()
		}

		processed, err := w.processBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.sleep(ctx, errorSleep)
			continue
		}
		if processed == 0 {
			w.sleep(ctx, emptyQueueSleep)
		}
	}
}

// Tracking returns how many runs are being polled right now.
func (w *StatusWorker) Tracking() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.tracking)
}

func (w *StatusWorker) processBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(ctx,
		domain.StreamOptimizationSubmitted,
		w.ConsumerGroup(),
		w.consumerName,
		w.settings.BatchSize,
		w.settings.ReadTimeout)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)

		var event domain.OptimizationSubmittedEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil || event.RequestID == "" {
			w.Logger().Warn("Skipping malformed submitted event",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}
		w.track(ctx, job{runID: event.RunID, requestID: event.RequestID, since: event.SubmittedAt})
	}

	// runs lost between ack and completion are recovered by the sweep
	if err := w.streamRepo.AckMessages(ctx, domain.StreamOptimizationSubmitted, w.ConsumerGroup(), ids...); err != nil {
		w.Logger().Warn("Failed to ack submitted events", zap.Int("count", len(ids)), zap.Error(err))
	}
	return len(messages), nil
}

func (w *StatusWorker) sweep(ctx context.Context) {
	runs, err := w.statusUC.PendingRuns(ctx, sweepLimit)
	if err != nil {
		w.Logger().Warn("Failed to list pending runs", zap.Error(err))
		return
	}
	for _, run := range runs {
		w.track(ctx, job{runID: run.ID, requestID: run.RequestID, since: run.CreatedAt})
	}
}

func (w *StatusWorker) track(ctx context.Context, j job) {
	w.mu.Lock()
	if _, ok := w.tracking[j.requestID]; ok {
		w.mu.Unlock()
		return
	}
	w.tracking[j.requestID] = struct{}{}
	w.mu.Unlock()

	if j.since.IsZero() {
		j.since = w.now()
	}

	w.pollers.Add(1)
	go func() {
		defer w.pollers.Done()
		defer func() {
			w.mu.Lock()
			delete(w.tracking, j.requestID)
			w.mu.Unlock()
		}()
		w.poll(ctx, j)
	}()
}

func (w *StatusWorker) poll(ctx context.Context, j job) {
	logger := w.Logger().With(zap.String("request_id", j.requestID))
	deadline := j.since.Add(w.settings.PollTimeout)

	for {
		info, err := w.statusUC.Refresh(ctx, j.requestID)
		switch {
		case err != nil:
			logger.Debug("Status refresh failed", zap.Error(err))
		case info.Status.IsTerminal():
			w.publishDone(ctx, j, info, false)
			return
		}

		if !w.now().Before(deadline) {
			logger.Warn("Optimization timed out", zap.Time("submitted_at", j.since))
			info, err := w.statusUC.Finish(ctx, j.requestID, timeoutReason)
			if err != nil {
				logger.Error("Failed to mark run as timed out", zap.Error(err))
				return
			}
			w.publishDone(ctx, j, info, true)
			return
		}

		if !w.sleep(ctx, w.settings.PollInterval) {
			return
		}
	}
}

func (w *StatusWorker) publishDone(ctx context.Context, j job, info *domain.OptimizationStatusInfo, timedOut bool) {
	event := domain.OptimizationDoneEvent{
		RunID:     j.runID,
		RequestID: j.requestID,
		Status:    info.Status,
		Error:     info.Error,
		Timeout:   timedOut,
	}
	metrics.RunsFinished.WithLabelValues(string(info.Status)).Inc()

	var err error
	for attempt := 1; attempt <= w.settings.MaxRetries; attempt++ {
		if err = w.streamRepo.PublishToStream(ctx, domain.StreamOptimizationDone, event); err == nil {
			w.Logger().Info("Optimization finished",
				zap.String("request_id", j.requestID),
				zap.String("status", string(info.Status)),
				zap.Bool("timeout", timedOut))
			return
		}
		if !w.sleep(ctx, time.Duration(attempt)*100*time.Millisecond) {
			break
		}
	}
	w.Logger().Error("Failed to publish done event",
		zap.String("request_id", j.requestID),
		zap.Error(err))
}

// sleep waits d and reports false when the worker is stopping.
func (w *StatusWorker) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-w.StopChan():
		return false
	case <-ctx.Done():
		return false
	}
}
