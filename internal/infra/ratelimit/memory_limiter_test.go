package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.t = c.t.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestMemoryLimiter_WindowExhaustion(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	window := 15 * time.Minute
	limiter := NewMemoryLimiter(window, 100, WithMemoryClock(clock.Now))
	start := clock.Now()

	for i := 1; i <= 100; i++ {
		decision, err := limiter.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		require.True(t, decision.Allowed, "request %d should be admitted", i)
		assert.Equal(t, 100, decision.Limit)
		assert.Equal(t, 100-i, decision.Remaining)
		assert.True(t, start.Add(window).Equal(decision.ResetAt))
	}

	decision, err := limiter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, 0, decision.Remaining)
	assert.Equal(t, window, decision.RetryAfter)
}

func TestMemoryLimiter_RetryAfterShrinks(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	limiter := NewMemoryLimiter(time.Minute, 1, WithMemoryClock(clock.Now))

	_, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)

	clock.Advance(20 * time.Second)
	decision, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, 40*time.Second, decision.RetryAfter)
}

func TestMemoryLimiter_NewWindowAfterReset(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	window := 15 * time.Minute
	limiter := NewMemoryLimiter(window, 2, WithMemoryClock(clock.Now))

	for range 3 {
		_, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
	}

	// A request landing exactly on the reset time still belongs to the old window.
	clock.Advance(window)
	decision, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)

	clock.Advance(time.Millisecond)
	decision, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 1, decision.Remaining)
	assert.True(t, clock.Now().Add(window).Equal(decision.ResetAt))
}

func TestMemoryLimiter_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	limiter := NewMemoryLimiter(time.Minute, 1, WithMemoryClock(clock.Now))

	first, err := limiter.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	blocked, err := limiter.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	other, err := limiter.Allow(ctx, "198.51.100.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestMemoryLimiter_InstancesShareNothing(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	a := NewMemoryLimiter(time.Minute, 1, WithMemoryClock(clock.Now))
	b := NewMemoryLimiter(time.Minute, 1, WithMemoryClock(clock.Now))

	_, err := a.Allow(ctx, "k")
	require.NoError(t, err)

	decision, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestMemoryLimiter_SweepsExpiredWindows(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	limiter := NewMemoryLimiter(time.Minute, 10, WithMemoryClock(clock.Now))

	for _, key := range []string{"a", "b", "c"} {
		_, err := limiter.Allow(ctx, key)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, limiter.Len())

	clock.Advance(time.Minute + time.Millisecond)
	_, err := limiter.Allow(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, 1, limiter.Len())
}

func TestMemoryLimiter_ConcurrentRequestsAreCountedExactly(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	limiter := NewMemoryLimiter(time.Minute, 100, WithMemoryClock(clock.Now))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)
	for range 250 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decision, err := limiter.Allow(ctx, "shared")
			if err != nil || !decision.Allowed {
				return
			}
			mu.Lock()
			admitted++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, admitted)

	decision, err := limiter.Allow(ctx, "shared")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
}
