package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handshake.backend/pkg/redis"
)

func newTestLimiter(t *testing.T, limit int64, window time.Duration) (*redis.ResendLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis.NewResendLimiter(client, limit, window), mr
}

func TestResendLimiter_AllowsUpToLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, 10*time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "alice@x.com")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
	}

	ok, err := limiter.Allow(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.False(t, ok, "fourth attempt must be denied")
}

func TestResendLimiter_PerEmailCounters(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, 10*time.Minute)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	// A different email has its own counter
	ok, err = limiter.Allow(ctx, "bob@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResendLimiter_WindowExpiry(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, 10*time.Minute)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(11 * time.Minute)

	ok, err = limiter.Allow(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.True(t, ok, "counter resets after the window")
}
