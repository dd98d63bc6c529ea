package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker is implemented by the Postgres and Redis clients
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler reports liveness together with the state of each dependency
type HealthHandler struct {
	checks  map[string]HealthChecker
	timeout time.Duration
}

func NewHealthHandler(checks map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	status := "healthy"
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check.Health(ctx); err != nil {
			deps[name] = err.Error()
			status = "degraded"
			continue
		}
		deps[name] = "ok"
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"dependencies": deps,
		"time":         time.Now(),
	})
}
