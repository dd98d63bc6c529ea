package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/domain/repository"
)

const statusKeyPrefix = "optimization:status:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// StatusKey is the Redis key holding the cached status of a run.
func StatusKey(requestID string) string {
	return statusKeyPrefix + requestID
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

func (r *cacheRepository) GetStatus(ctx context.Context, requestID string) (*domain.OptimizationStatusInfo, error) {
	data, err := r.Get(ctx, StatusKey(requestID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var status domain.OptimizationStatusInfo
	if err := json.Unmarshal(data, &status); err != nil {
		r.logger.Error("Failed to unmarshal status from cache",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, fmt.Errorf("unmarshal status: %w", err)
	}

	return &status, nil
}

func (r *cacheRepository) SetStatus(ctx context.Context, status *domain.OptimizationStatusInfo, ttl time.Duration) error {
	data, err := json.Marshal(status)
	if err != nil {
		r.logger.Error("Failed to marshal status", zap.Error(err))
		return fmt.Errorf("marshal status: %w", err)
	}

	return r.Set(ctx, StatusKey(status.RequestID), data, ttl)
}
