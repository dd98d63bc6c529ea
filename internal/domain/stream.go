package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names (consumers downstream subscribe to these)
const (
	StreamOptimizationSubmitted = "stream:optimization:submitted"
	StreamOptimizationDone      = "stream:optimization:done"
)

// OptimizationSubmittedEvent - a run was accepted by the optimizer and needs tracking
type OptimizationSubmittedEvent struct {
	RunID       uuid.UUID `json:"run_id"`
	RequestID   string    `json:"request_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// OptimizationDoneEvent - a run reached a terminal status
type OptimizationDoneEvent struct {
	RunID     uuid.UUID          `json:"run_id"`
	RequestID string             `json:"request_id"`
	Status    OptimizationStatus `json:"status"`
	Error     string             `json:"error,omitempty"`
	Timeout   bool               `json:"timeout,omitempty"`
}

// IsSuccess reports whether the run produced a result.
func (e *OptimizationDoneEvent) IsSuccess() bool {
	return e.Status == StatusCompleted && e.Error == ""
}

// StreamMessage - raw message read from a Redis stream
type StreamMessage struct {
	ID   string
	Data string
}
