// Package ratelimit implements the fixed-window request governor.
//
// A client key gets a window of length W starting at its first request. Every
// request in the window increments the count; the Nth request of a window with
// capacity N is admitted and the (N+1)th is the first rejected. A request that
// arrives after the window's reset time opens a new window with count 1.
package ratelimit

import (
	"time"

	"portfolio/internal/domain/service"
)

// decide turns a post-increment window state into a decision.
func decide(count int, resetAt, now time.Time, capacity int) service.RateDecision {
	remaining := capacity - count
	if remaining < 0 {
		remaining = 0
	}

	decision := service.RateDecision{
		Allowed:   count <= capacity,
		Limit:     capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
	if !decision.Allowed {
		decision.RetryAfter = resetAt.Sub(now)
	}

	return decision
}
