package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLimiter(t *testing.T, window time.Duration, capacity int) (*RedisLimiter, *miniredis.Miniredis, *fakeClock) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	clock := newClock()
	limiter := NewRedisLimiter(client, "ratelimit", window, capacity)
	limiter.now = clock.Now

	return limiter, mr, clock
}

func TestRedisLimiter_WindowExhaustion(t *testing.T) {
	ctx := context.Background()
	window := 15 * time.Minute
	limiter, mr, clock := newRedisLimiter(t, window, 3)

	for i := 1; i <= 3; i++ {
		decision, err := limiter.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, 3-i, decision.Remaining)
		assert.True(t, clock.Now().Add(window).Equal(decision.ResetAt))
	}

	decision, err := limiter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, 0, decision.Remaining)
	assert.Equal(t, window, decision.RetryAfter)

	assert.Equal(t, "4", mustGet(t, mr, "ratelimit:203.0.113.7"))
	assert.Equal(t, window+time.Millisecond, mr.TTL("ratelimit:203.0.113.7"))
}

func TestRedisLimiter_NewWindowAfterExpiry(t *testing.T) {
	ctx := context.Background()
	window := time.Minute
	limiter, mr, _ := newRedisLimiter(t, window, 1)

	_, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	decision, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)

	mr.FastForward(window + time.Millisecond)

	decision, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 0, decision.Remaining)
}

func TestRedisLimiter_ResetInstantBelongsToOldWindow(t *testing.T) {
	ctx := context.Background()
	window := time.Minute
	limiter, mr, clock := newRedisLimiter(t, window, 1)

	first, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	require.True(t, first.Allowed)

	mr.FastForward(window)
	clock.Advance(window)

	decision, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, decision.Allowed, "a request at exactly resetAt is counted in the old window")
	assert.True(t, first.ResetAt.Equal(decision.ResetAt))
	assert.Zero(t, decision.RetryAfter)

	mr.FastForward(time.Millisecond)
	clock.Advance(time.Millisecond)

	decision, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.True(t, clock.Now().Add(window).Equal(decision.ResetAt))
}

func TestRedisLimiter_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	limiter, _, _ := newRedisLimiter(t, time.Minute, 1)

	_, err := limiter.Allow(ctx, "a")
	require.NoError(t, err)

	decision, err := limiter.Allow(ctx, "b")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestRedisLimiter_StoreUnavailable(t *testing.T) {
	limiter, mr, _ := newRedisLimiter(t, time.Minute, 1)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "k")
	assert.Error(t, err)
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()

	value, err := mr.Get(key)
	require.NoError(t, err)

	return value
}
