package service

import (
	"context"
	"time"
)

// RateDecision is the outcome of one rate limit check. Every field is reported
// whether or not the request was admitted so clients can self-throttle.
type RateDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration // Meaningful only when Allowed is false.
}

// RateLimiter counts requests per client key in fixed windows.
// Implementations must be safe for concurrent use.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateDecision, error)
}
