package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/collection-routing/internal/pkg/metrics"
)

// Metrics records request counts and latency per route template
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		// route path keeps label cardinality bounded (":id" instead of the value)
		route := c.Route().Path

		code := strconv.Itoa(status)

		metrics.HTTPRequests.WithLabelValues(c.Method(), route, code).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Method(), route, code).Observe(time.Since(start).Seconds())
		return err
	}
}
