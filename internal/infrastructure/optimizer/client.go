package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/collection-routing/internal/config"
	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/domain/repository"
	"github.com/collection-routing/internal/pkg/metrics"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	defaults   Defaults
	radiusKm   float64
	logger     *zap.Logger
}

// NewOptimizerClient creates a rate-limited client for the remote route optimizer
func NewOptimizerClient(cfg *config.OptimizerConfig, validation *config.ValidationConfig, logger *zap.Logger) repository.OptimizerRepository {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: rate.NewLimiter(limit, burst),
		defaults: Defaults{
			WindowStart: validation.DefaultTimeWindowStart,
			WindowEnd:   validation.DefaultTimeWindowEnd,
			ServiceTime: validation.DefaultServiceTime,
		},
		radiusKm: validation.MaxRadiusKm,
		logger:   logger,
	}
}

func (c *client) Submit(ctx context.Context, requestID string, req *domain.OptimizationRequest) (*domain.OptimizerSubmission, error) {
	body, err := json.Marshal(buildPayload(req, c.defaults, c.radiusKm))
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	c.logger.Debug("Submitting optimization",
		zap.String("request_id", requestID),
		zap.Int("points", len(req.Points)),
		zap.Int("vehicles", len(req.Vehicles)))

	var sub domain.OptimizerSubmission
	if err := c.do(ctx, "submit", http.MethodPost, c.baseURL+"/optimize", requestID, body, &sub); err != nil {
		return nil, err
	}
	if sub.RequestID == "" {
		sub.RequestID = requestID
	}
	if sub.Status == "" {
		sub.Status = domain.StatusProcessing
	}

	return &sub, nil
}

func (c *client) Status(ctx context.Context, requestID string) (*domain.OptimizationStatusInfo, error) {
	var resp statusResponse
	endpoint := fmt.Sprintf("%s/optimize/%s/status", c.baseURL, url.PathEscape(requestID))
	if err := c.do(ctx, "status", http.MethodGet, endpoint, requestID, nil, &resp); err != nil {
		return nil, err
	}

	return resp.toDomain(requestID), nil
}

// do runs one rate-limited call and decodes a 200 response into out.
func (c *client) do(ctx context.Context, op, method, endpoint, requestID string, body []byte, out interface{}) (err error) {
	start := time.Now()
	status := "ok"
	defer func() {
		if err != nil {
			status = "error"
		}
		metrics.OptimizerLatency.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("operation", op), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && op == "status" {
		return domain.ErrRunNotFound
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Optimizer returned error",
			zap.String("operation", op),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// StatusError is a non-2xx answer from the optimizer
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return "optimizer API error: status " + strconv.Itoa(e.Code) + ", body: " + e.Body
}

type statusResponse struct {
	RequestID     string                    `json:"request_id"`
	Status        domain.OptimizationStatus `json:"status"`
	Message       string                    `json:"message"`
	Result        json.RawMessage           `json:"result"`
	Error         string                    `json:"error"`
	ExecutionTime float64                   `json:"execution_time"`
	CompletedAt   string                    `json:"completed_at"`
}

func (r statusResponse) toDomain(requestID string) *domain.OptimizationStatusInfo {
	info := &domain.OptimizationStatusInfo{
		RequestID:     r.RequestID,
		Status:        r.Status,
		Message:       r.Message,
		Error:         r.Error,
		ExecutionTime: r.ExecutionTime,
	}
	if info.RequestID == "" {
		info.RequestID = requestID
	}
	if len(r.Result) > 0 && string(r.Result) != "null" {
		info.Result = r.Result
	}
	if t, ok := parseCompletedAt(r.CompletedAt); ok {
		info.CompletedAt = &t
	}
	return info
}

// parseCompletedAt accepts RFC 3339 and naive ISO timestamps (assumed UTC).
func parseCompletedAt(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
