package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/collection-routing/internal/config"
	"github.com/collection-routing/internal/infrastructure/optimizer"
	"github.com/collection-routing/internal/pkg/logger"
	"github.com/collection-routing/internal/pkg/metrics"
	"github.com/collection-routing/internal/repository/cache"
	"github.com/collection-routing/internal/repository/postgres"
	redisRepo "github.com/collection-routing/internal/repository/redis"
	"github.com/collection-routing/internal/usecase"
	"github.com/collection-routing/internal/usecase/dto"
	"github.com/collection-routing/internal/worker"
	"github.com/collection-routing/internal/worker/optimization"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Optimization Status Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Duration("poll_interval", cfg.Worker.PollInterval),
		zap.Duration("poll_timeout", cfg.Worker.PollTimeout))

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

	// 5. Repositories and use case
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	optimizationUC := usecase.NewOptimizationUseCase(
		optimizer.NewOptimizerClient(&cfg.Optimizer, &cfg.Validation, log),
		postgres.NewOptimizationRunRepository(db, log),
		cache.NewCacheRepository(redisClient),
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

	// 6. Workers
	statusWorker := optimization.NewStatusWorker(
		streamRepo,
		optimizationUC,
		cfg.Worker.ConsumerGroup,
		optimization.Settings{
			BatchSize:    int64(cfg.Worker.BatchSize),
			ReadTimeout:  cfg.Worker.StreamReadTimeout,
			PollInterval: cfg.Worker.PollInterval,
			PollTimeout:  cfg.Worker.PollTimeout,
			MaxRetries:   cfg.Worker.MaxRetries,
		},
		log,
	)

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(statusWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 7. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Stop first so pollers exit through the stop channel, then cancel in-flight calls
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
