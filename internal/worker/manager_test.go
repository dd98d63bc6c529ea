package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/collection-routing/internal/worker"
)

type blockingWorker struct {
	*worker.BaseWorker
	started atomic.Int32
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Add(1)
	select {
	case <-w.StopChan():
	case <-ctx.Done():
	}
	return nil
}

func TestWorkerManager_StartStop(t *testing.T) {
	logger := zap.NewNop()
	m := worker.NewWorkerManager(logger)
	a := &blockingWorker{BaseWorker: worker.NewBaseWorker("a", "group", logger)}
	b := &blockingWorker{BaseWorker: worker.NewBaseWorker("b", "group", logger)}
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, func() bool {
		return a.started.Load() == 1 && b.started.Load() == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())

	// second stop is a no-op
	assert.NoError(t, a.Stop())
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}
