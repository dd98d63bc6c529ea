package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/collection-routing/internal/config"
	"github.com/collection-routing/internal/delivery/http/handler"
	"github.com/collection-routing/internal/delivery/http/middleware"
	"github.com/collection-routing/internal/pkg/metrics"
)

// Server - HTTP server based on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	optimizationHandler *handler.OptimizationHandler
	healthHandler       *handler.HealthHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	optimizationHandler *handler.OptimizationHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Collection Routing",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    8 * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		optimizationHandler: optimizationHandler,
		healthHandler:       healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics())
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler.Health)

	api.Post("/optimization/validate", s.optimizationHandler.Validate)
	api.Post("/optimization", s.optimizationHandler.Submit)
	api.Get("/optimization/:id/status", s.optimizationHandler.Status)
}

// App exposes the Fiber application, used by tests through app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown, waits for in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			switch code {
			case fiber.StatusNotFound:
				errCode = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				errCode = "METHOD_NOT_ALLOWED"
			case fiber.StatusRequestEntityTooLarge:
				errCode = "REQUEST_TOO_LARGE"
			}
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
