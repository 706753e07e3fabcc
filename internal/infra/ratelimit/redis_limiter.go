package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio/internal/domain/service"
	"portfolio/internal/errors"
)

// windowScript increments the window counter and starts the window on the first
// hit. A counter left without a TTL is given one so it cannot live forever.
// ARGV[1] is the window plus one millisecond: Redis drops a key once its TTL
// reaches zero, while a request landing exactly on resetAt still belongs to the
// old window.
var windowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
local ttl = redis.call('PTTL', KEYS[1])
if count == 1 or ttl < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// boundaryGrace keeps a key alive through its resetAt instant.
const boundaryGrace = time.Millisecond

// RedisLimiter shares windows between API instances. Key expiry replaces the sweep.
type RedisLimiter struct {
	client   redis.UniversalClient
	prefix   string
	window   time.Duration
	capacity int
	now      func() time.Time
}

// NewRedisLimiter creates a limiter storing windows under prefix:key.
func NewRedisLimiter(client redis.UniversalClient, prefix string, window time.Duration, capacity int) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		prefix:   prefix,
		window:   window,
		capacity: capacity,
		now:      time.Now,
	}
}

// Allow records one request for key and reports whether it is admitted.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (service.RateDecision, error) {
	now := l.now()

	ttl := (l.window + boundaryGrace).Milliseconds()
	res, err := windowScript.Run(ctx, l.client, []string{l.prefix + ":" + key}, ttl).Int64Slice()
	if err != nil {
		return service.RateDecision{}, errors.Wrap(err, "failed to update rate window")
	}
	if len(res) != 2 {
		return service.RateDecision{}, errors.Errorf("unexpected rate window reply of length %d", len(res))
	}

	resetAt := now.Add(time.Duration(res[1])*time.Millisecond - boundaryGrace)

	return decide(int(res[0]), resetAt, now, l.capacity), nil
}
