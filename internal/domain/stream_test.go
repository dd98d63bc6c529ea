package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOptimizationDoneEvent_IsSuccess(t *testing.T) {
	tests := []struct {
		name     string
		event    OptimizationDoneEvent
		expected bool
	}{
		{
			name:     "completed without error",
			event:    OptimizationDoneEvent{RunID: uuid.New(), Status: StatusCompleted},
			expected: true,
		},
		{
			name:     "completed with error message",
			event:    OptimizationDoneEvent{RunID: uuid.New(), Status: StatusCompleted, Error: "partial"},
			expected: false,
		},
		{
			name:     "optimizer error",
			event:    OptimizationDoneEvent{RunID: uuid.New(), Status: StatusError, Error: "infeasible"},
			expected: false,
		},
		{
			name:     "still processing after timeout",
			event:    OptimizationDoneEvent{RunID: uuid.New(), Status: StatusProcessing, Timeout: true},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.IsSuccess())
		})
	}
}

func TestOptimizationStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusProcessing.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusError.IsTerminal())
}

func TestOptimizationRequest_RadiusKm(t *testing.T) {
	req := OptimizationRequest{}
	assert.Equal(t, 30.0, req.RadiusKm(30))
	assert.Equal(t, DefaultMaxRadiusKm, req.RadiusKm(0))

	req.Options.MaxRadiusKm = 12
	assert.Equal(t, 12.0, req.RadiusKm(30))

	req.Options.MaxRadiusKm = -1
	assert.Equal(t, 30.0, req.RadiusKm(30))
}
