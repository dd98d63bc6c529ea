package usecase_test

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/collection-routing/internal/domain"
)

// MockOptimizerRepository is a mock of OptimizerRepository
type MockOptimizerRepository struct {
	mock.Mock
}

func (m *MockOptimizerRepository) Submit(ctx context.Context, requestID string, req *domain.OptimizationRequest) (*domain.OptimizerSubmission, error) {
	args := m.Called(ctx, requestID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OptimizerSubmission), args.Error(1)
}

func (m *MockOptimizerRepository) Status(ctx context.Context, requestID string) (*domain.OptimizationStatusInfo, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OptimizationStatusInfo), args.Error(1)
}

// MockRunRepository is a mock of OptimizationRunRepository
type MockRunRepository struct {
	mock.Mock
}

func (m *MockRunRepository) Create(ctx context.Context, run *domain.OptimizationRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunRepository) GetByRequestID(ctx context.Context, requestID string) (*domain.OptimizationRun, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OptimizationRun), args.Error(1)
}

func (m *MockRunRepository) UpdateStatus(ctx context.Context, requestID string, status domain.OptimizationStatus, result json.RawMessage, errMsg string) error {
	args := m.Called(ctx, requestID, status, result, errMsg)
	return args.Error(0)
}

func (m *MockRunRepository) ListPending(ctx context.Context, limit int) ([]*domain.OptimizationRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OptimizationRun), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetStatus(ctx context.Context, requestID string) (*domain.OptimizationStatusInfo, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OptimizationStatusInfo), args.Error(1)
}

func (m *MockCacheRepository) SetStatus(ctx context.Context, status *domain.OptimizationStatusInfo, ttl time.Duration) error {
	args := m.Called(ctx, status, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64, block time.Duration) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count, block)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs ...string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}
