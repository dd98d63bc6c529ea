package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	err := ErrValidationFailed.WithDetails(map[string]interface{}{"errors": []string{"x"}})

	assert.Nil(t, ErrValidationFailed.Details)
	assert.Equal(t, []string{"x"}, err.Details["errors"])
	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	assert.True(t, stderrors.Is(err, ErrValidationFailed))
	assert.False(t, stderrors.Is(err, ErrInvalidRequest))
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", ErrOptimizerUnavailable.WithMessage("timeout"))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "OPTIMIZER_UNAVAILABLE", appErr.Code)
	assert.Equal(t, "timeout", appErr.Message)
	assert.Equal(t, "OPTIMIZER_UNAVAILABLE: timeout", appErr.Error())

	_, ok = As(stderrors.New("plain"))
	assert.False(t, ok)
}
