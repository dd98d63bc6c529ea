package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/collection-routing/internal/config"
	delivery "github.com/collection-routing/internal/delivery/http"
	"github.com/collection-routing/internal/delivery/http/handler"
	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/pkg/errors"
	"github.com/collection-routing/internal/usecase"
	"github.com/collection-routing/internal/usecase/dto"
)

// fakeService validates for real and stubs the parts that need the optimizer
type fakeService struct {
	*usecase.OptimizationUseCase
	submit func(req *dto.OptimizationRequest) (*dto.SubmitResponse, error)
	status func(id string) (*domain.OptimizationStatusInfo, error)
}

func (f *fakeService) Submit(ctx context.Context, req *dto.OptimizationRequest) (*dto.SubmitResponse, error) {
	return f.submit(req)
}

func (f *fakeService) Status(ctx context.Context, id string) (*domain.OptimizationStatusInfo, error) {
	return f.status(id)
}

type stubCheck struct{ err error }

func (s stubCheck) Health(context.Context) error { return s.err }

func newServer(svc *fakeService, checks map[string]handler.HealthChecker) *delivery.Server {
	if svc.OptimizationUseCase == nil {
		svc.OptimizationUseCase = usecase.NewOptimizationUseCase(nil, nil, nil, nil, usecase.OptimizationSettings{
			MaxRadiusKm: 50,
			Defaults:    dto.RequestDefaults{TimeWindowStart: "08:00", TimeWindowEnd: "18:00", ServiceTime: 5},
		}, zap.NewNop())
	}
	logger := zap.NewNop()
	return delivery.NewServer(&config.Config{}, logger,
		handler.NewOptimizationHandler(svc, logger),
		handler.NewHealthHandler(checks))
}

func do(t *testing.T, s *delivery.Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req, int((5 * time.Second).Milliseconds()))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

const validBody = `{
	"name": "Rota Centro",
	"points": [
		{"id": "p1", "name": "Praça da Sé", "lat": -23.5503, "lng": -46.6339, "weight": 120, "volume": 1.2, "quantity": 1,
		 "time_window_start": "08:00", "time_window_end": "12:00"},
		{"id": "p2", "name": "Liberdade", "lat": "-23.5587", "lng": "-46.6347", "weight": "80"}
	],
	"vehicles": [{"id": "v1", "name": "Caminhão 1", "capacity": 1000, "volume_capacity": 10}],
	"startPoint": {"lat": -23.56, "lng": -46.64}
}`

type validationEnvelope struct {
	Data dto.ValidationResponse `json:"data"`
}

func TestOptimizationHandler_Validate(t *testing.T) {
	s := newServer(&fakeService{}, nil)

	t.Run("valid request with string numbers", func(t *testing.T) {
		resp, raw := do(t, s, http.MethodPost, "/api/v1/optimization/validate", validBody)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

		var env validationEnvelope
		require.NoError(t, json.Unmarshal(raw, &env))
		assert.True(t, env.Data.IsValid)
		assert.Empty(t, env.Data.Errors)
		assert.Empty(t, env.Data.Warnings)
	})

	t.Run("invalid request reports every finding", func(t *testing.T) {
		body := `{
			"points": [
				{"id": "p1", "name": "A", "lat": "abc", "lng": -46.63, "weight": 100},
				{"id": "p2", "name": "B", "lat": -23.55, "lng": -46.63, "weight": -5, "time_window_start": "25:00"}
			],
			"vehicles": []
		}`
		resp, raw := do(t, s, http.MethodPost, "/api/v1/optimization/validate", body)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

		var env validationEnvelope
		require.NoError(t, json.Unmarshal(raw, &env))
		assert.False(t, env.Data.IsValid)
		// coordinates, weight, window, no vehicles, no start point, capacity
		assert.GreaterOrEqual(t, len(env.Data.Errors), 5)
		assert.Len(t, env.Data.Issues, len(env.Data.Errors)+len(env.Data.Warnings))
		assert.Contains(t, env.Data.FormattedErrors, "Ponto de partida (1):")
	})

	t.Run("malformed json", func(t *testing.T) {
		resp, raw := do(t, s, http.MethodPost, "/api/v1/optimization/validate", `{"points": [`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(raw), "INVALID_REQUEST")
	})
}

func TestOptimizationHandler_Submit(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		var got *dto.OptimizationRequest
		s := newServer(&fakeService{
			submit: func(req *dto.OptimizationRequest) (*dto.SubmitResponse, error) {
				got = req
				return &dto.SubmitResponse{
					RequestID: "opt_1700000000_0a1b2c3d",
					RunID:     "11111111-2222-3333-4444-555555555555",
					Status:    domain.StatusProcessing,
					Warnings:  []string{},
				}, nil
			},
		}, nil)

		resp, raw := do(t, s, http.MethodPost, "/api/v1/optimization", validBody)

		require.Equal(t, http.StatusAccepted, resp.StatusCode, string(raw))
		assert.Equal(t, "opt_1700000000_0a1b2c3d", resp.Header.Get("X-Request-ID"))
		assert.Contains(t, string(raw), `"request_id":"opt_1700000000_0a1b2c3d"`)
		require.NotNil(t, got)
		assert.Len(t, got.Points, 2)
	})

	t.Run("rejected by validation", func(t *testing.T) {
		s := newServer(&fakeService{
			submit: func(req *dto.OptimizationRequest) (*dto.SubmitResponse, error) {
				return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
					"validation": &dto.ValidationResponse{Errors: []string{"Nenhum veículo selecionado"}},
				})
			},
		}, nil)

		resp, raw := do(t, s, http.MethodPost, "/api/v1/optimization", validBody)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, string(raw), "VALIDATION_FAILED")
		assert.Contains(t, string(raw), "Nenhum veículo selecionado")
	})

	t.Run("optimizer unavailable", func(t *testing.T) {
		s := newServer(&fakeService{
			submit: func(req *dto.OptimizationRequest) (*dto.SubmitResponse, error) {
				return nil, errors.ErrOptimizerUnavailable
			},
		}, nil)

		resp, _ := do(t, s, http.MethodPost, "/api/v1/optimization", validBody)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("shape limits", func(t *testing.T) {
		s := newServer(&fakeService{}, nil)
		body := `{"points":[{"id":"p1","service_time":-3}],"vehicles":[]}`

		resp, raw := do(t, s, http.MethodPost, "/api/v1/optimization", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(raw), "fields")
	})
}

func TestOptimizationHandler_Status(t *testing.T) {
	const id = "opt_1700000000_0a1b2c3d"

	s := newServer(&fakeService{
		status: func(requestID string) (*domain.OptimizationStatusInfo, error) {
			switch requestID {
			case id:
				return &domain.OptimizationStatusInfo{RequestID: id, Status: domain.StatusCompleted, Result: json.RawMessage(`{"routes":[]}`)}, nil
			case "opt_1_ffffffff":
				return nil, errors.ErrOptimizationNotFound
			default:
				return nil, stderrors.New("unexpected")
			}
		},
	}, nil)

	t.Run("found", func(t *testing.T) {
		resp, raw := do(t, s, http.MethodGet, "/api/v1/optimization/"+id+"/status", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(raw), `"status":"completed"`)
		assert.Contains(t, string(raw), `"routes":[]`)
	})

	t.Run("not found", func(t *testing.T) {
		resp, _ := do(t, s, http.MethodGet, "/api/v1/optimization/opt_1_ffffffff/status", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed id", func(t *testing.T) {
		resp, raw := do(t, s, http.MethodGet, "/api/v1/optimization/nope/status", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(raw), "INVALID_REQUEST")
	})

	t.Run("unexpected error is a 500", func(t *testing.T) {
		resp, _ := do(t, s, http.MethodGet, "/api/v1/optimization/opt_2_aaaaaaaa/status", "")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		s := newServer(&fakeService{}, map[string]handler.HealthChecker{
			"postgres": stubCheck{},
			"redis":    stubCheck{},
		})
		resp, raw := do(t, s, http.MethodGet, "/api/v1/health", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(raw), `"status":"healthy"`)
	})

	t.Run("degraded", func(t *testing.T) {
		s := newServer(&fakeService{}, map[string]handler.HealthChecker{
			"postgres": stubCheck{},
			"redis":    stubCheck{err: stderrors.New("connection refused")},
		})
		resp, raw := do(t, s, http.MethodGet, "/api/v1/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Contains(t, string(raw), "connection refused")
	})
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newServer(&fakeService{}, nil)
	resp, raw := do(t, s, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "NOT_FOUND")
}
