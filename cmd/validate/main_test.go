package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collection-routing/internal/config"
)

const yamlRequest = `
name: Rota Centro
points:
  - id: p1
    name: Praça da Sé
    lat: -23.5503
    lng: -46.6339
    weight: 120
    time_window_start: "08:00"
    time_window_end: "12:00"
  - id: p2
    name: Liberdade
    lat: "-23.5587"
    lng: "-46.6347"
    weight: "80"
vehicles:
  - id: v1
    name: Caminhão 1
    capacity: 1000
startPoint:
  lat: -23.56
  lng: -46.64
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRequest_YAML(t *testing.T) {
	req, err := loadRequest(writeFile(t, "route.yaml", yamlRequest), "", nil)
	require.NoError(t, err)

	require.Len(t, req.Points, 2)
	assert.Equal(t, "Praça da Sé", req.Points[0].Name)
	lat, ok := req.Points[1].Lat.Float()
	assert.True(t, ok)
	assert.InDelta(t, -23.5587, lat, 1e-9)
	require.NotNil(t, req.StartPoint)
	assert.Equal(t, "v1", req.Vehicles[0].ID)
}

func TestLoadRequest_JSONFromStdin(t *testing.T) {
	body := `{"points":[{"id":"p1","lat":1,"lng":2}],"vehicles":[],"startPoint":{"lat":1,"lng":2}}`
	req, err := loadRequest("-", "json", strings.NewReader(body))
	require.NoError(t, err)
	assert.Len(t, req.Points, 1)
	assert.Empty(t, req.Vehicles)
}

func TestLoadRequest_Errors(t *testing.T) {
	_, err := loadRequest(writeFile(t, "route.txt", "{}"), "", nil)
	assert.ErrorContains(t, err, "unsupported format")

	_, err = loadRequest(writeFile(t, "route.json", "{"), "", nil)
	assert.ErrorContains(t, err, "decode")

	_, err = loadRequest(filepath.Join(t.TempDir(), "missing.json"), "", nil)
	assert.ErrorContains(t, err, "read")
}

func TestApplyDefaults(t *testing.T) {
	req, err := loadRequest(writeFile(t, "route.yaml", yamlRequest), "", nil)
	require.NoError(t, err)

	applyDefaults(&req, config.ValidationConfig{
		DefaultTimeWindowStart: "07:00",
		DefaultTimeWindowEnd:   "17:00",
		DefaultServiceTime:     5,
	})

	assert.Equal(t, "08:00", req.Points[0].TimeWindowStart)
	assert.Equal(t, "07:00", req.Points[1].TimeWindowStart)
	assert.Equal(t, "17:00", req.Points[1].TimeWindowEnd)
	assert.Equal(t, 5, req.Points[1].ServiceTime)
}

func TestRun(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-input", writeFile(t, "route.yaml", yamlRequest)}, nil, &stdout, &stderr)

		assert.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), "Solicitação válida.")
	})

	t.Run("invalid request", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		body := `{"points":[],"vehicles":[]}`
		code := run([]string{"-input", "-", "-format", "json"}, strings.NewReader(body), &stdout, &stderr)

		assert.Equal(t, 1, code)
		assert.Contains(t, stdout.String(), "Foram encontrados 3 erro(s)")
	})

	t.Run("radius override produces a warning", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-input", writeFile(t, "route.yaml", yamlRequest), "-radius", "0.5", "-json"}, nil, &stdout, &stderr)

		assert.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), "a mais de 0.5 km")
	})

	t.Run("missing input", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(nil, nil, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "-input is required")
	})
}
