package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// OptimizationStatus mirrors the statuses reported by the remote optimizer
type OptimizationStatus string

const (
	StatusProcessing OptimizationStatus = "processing"
	StatusCompleted  OptimizationStatus = "completed"
	StatusError      OptimizationStatus = "error"
)

// IsTerminal reports whether the optimizer will not change the status again.
func (s OptimizationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusError
}

// OptimizationRun - one submitted optimization tracked by request id
type OptimizationRun struct {
	ID           uuid.UUID          `json:"id" db:"id"`
	RequestID    string             `json:"request_id" db:"request_id"`
	Name         string             `json:"name" db:"name"`
	Status       OptimizationStatus `json:"status" db:"status"`
	PointCount   int                `json:"point_count" db:"point_count"`
	VehicleCount int                `json:"vehicle_count" db:"vehicle_count"`
	Warnings     []string           `json:"warnings" db:"-"`
	Error        string             `json:"error,omitempty" db:"error"`
	Result       json.RawMessage    `json:"result,omitempty" db:"-"`
	CreatedAt    time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" db:"updated_at"`
}

// OptimizationStatusInfo - status snapshot served to clients and cached in Redis
type OptimizationStatusInfo struct {
	RequestID     string             `json:"request_id"`
	Status        OptimizationStatus `json:"status"`
	Message       string             `json:"message,omitempty"`
	Result        json.RawMessage    `json:"result,omitempty"`
	Error         string             `json:"error,omitempty"`
	ExecutionTime float64            `json:"execution_time,omitempty"`
	CompletedAt   *time.Time         `json:"completed_at,omitempty"`
}

// OptimizerSubmission - acknowledgement returned by the optimizer on submit
type OptimizerSubmission struct {
	RequestID string             `json:"request_id"`
	Status    OptimizationStatus `json:"status"`
	Message   string             `json:"message,omitempty"`
}

// ErrRunNotFound is returned by repositories when a run does not exist
var ErrRunNotFound = errors.New("optimization run not found")
