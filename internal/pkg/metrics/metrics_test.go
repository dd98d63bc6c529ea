package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDefault_Idempotent(t *testing.T) {
	require.NotPanics(t, func() {
		RegisterDefault()
		RegisterDefault()
	})
}

func TestValidationsCounter(t *testing.T) {
	RegisterDefault()
	before := testutil.ToFloat64(Validations.WithLabelValues("invalid"))

	Validations.WithLabelValues("invalid").Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(Validations.WithLabelValues("invalid")))
}
