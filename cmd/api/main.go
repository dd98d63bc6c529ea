package main

// @title Collection Routing API
// @version 1.0.0
// @description Pre-flight validation and submission of route optimization requests for waste collection.
// @description
// @description Every request is checked for coordinates, numeric fields, time windows, vehicles,
// @description start point, service radius, overlapping windows and fleet capacity before it reaches
// @description the route optimizer. Findings are grouped by category and rendered in Portuguese.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/collection-routing/docs/swagger"
	"github.com/collection-routing/internal/config"
	httpDelivery "github.com/collection-routing/internal/delivery/http"
	"github.com/collection-routing/internal/delivery/http/handler"
	"github.com/collection-routing/internal/infrastructure/optimizer"
	"github.com/collection-routing/internal/pkg/logger"
	"github.com/collection-routing/internal/pkg/metrics"
	"github.com/collection-routing/internal/repository/cache"
	"github.com/collection-routing/internal/repository/postgres"
	redisRepo "github.com/collection-routing/internal/repository/redis"
	"github.com/collection-routing/internal/usecase"
	"github.com/collection-routing/internal/usecase/dto"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Collection Routing API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("optimizer_url", cfg.Optimizer.BaseURL),
		zap.Float64("max_radius_km", cfg.Validation.MaxRadiusKm),
	)

	metrics.RegisterDefault()

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Repositories
	runRepo := postgres.NewOptimizationRunRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	optimizerClient := optimizer.NewOptimizerClient(&cfg.Optimizer, &cfg.Validation, log)

	// 7. Use cases
	optimizationUC := usecase.NewOptimizationUseCase(
		optimizerClient,
		runRepo,
		cacheRepo,
		streamRepo,
		usecase.OptimizationSettings{
			MaxRadiusKm: cfg.Validation.MaxRadiusKm,
			Defaults: dto.RequestDefaults{
				TimeWindowStart: cfg.Validation.DefaultTimeWindowStart,
				TimeWindowEnd:   cfg.Validation.DefaultTimeWindowEnd,
				ServiceTime:     cfg.Validation.DefaultServiceTime,
			},
			StatusTTL: cfg.Cache.StatusTTL,
		},
		log,
	)

	// 8. Handlers and server
	optimizationHandler := handler.NewOptimizationHandler(optimizationUC, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	})

	server := httpDelivery.NewServer(cfg, log, optimizationHandler, healthHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
