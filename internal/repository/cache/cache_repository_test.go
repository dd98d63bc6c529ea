package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/repository/cache"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *cache.Redis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, cache.NewRedisFromClient(client, zap.NewNop())
}

func TestCacheRepository_GetSetDelete(t *testing.T) {
	mr, r := newTestRedis(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	val, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))

	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	exists, err := repo.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, time.Minute, mr.TTL("k"))

	require.NoError(t, repo.Delete(ctx, "k"))
	exists, err = repo.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCacheRepository_Status(t *testing.T) {
	mr, r := newTestRedis(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	status, err := repo.GetStatus(ctx, "opt_1_abcdef12")
	require.NoError(t, err)
	assert.Nil(t, status)

	in := &domain.OptimizationStatusInfo{
		RequestID: "opt_1_abcdef12",
		Status:    domain.StatusCompleted,
		Result:    json.RawMessage(`{"routes":[]}`),
	}
	require.NoError(t, repo.SetStatus(ctx, in, time.Hour))

	assert.True(t, mr.Exists("optimization:status:opt_1_abcdef12"))
	assert.Equal(t, time.Hour, mr.TTL(cache.StatusKey("opt_1_abcdef12")))

	out, err := repo.GetStatus(ctx, "opt_1_abcdef12")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, domain.StatusCompleted, out.Status)
	assert.JSONEq(t, `{"routes":[]}`, string(out.Result))
}

func TestCacheRepository_StatusCorrupted(t *testing.T) {
	mr, r := newTestRedis(t)
	repo := cache.NewCacheRepository(r)

	require.NoError(t, mr.Set(cache.StatusKey("bad"), "not json"))

	_, err := repo.GetStatus(context.Background(), "bad")
	assert.Error(t, err)
}

func TestCacheRepository_ConnectionError(t *testing.T) {
	mr, r := newTestRedis(t)
	repo := cache.NewCacheRepository(r)
	mr.Close()

	_, err := repo.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestRedis_Health(t *testing.T) {
	_, r := newTestRedis(t)
	assert.NoError(t, r.Health(context.Background()))
}
