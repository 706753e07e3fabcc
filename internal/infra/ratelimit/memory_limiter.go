package ratelimit

import (
	"context"
	"sync"
	"time"

	"portfolio/internal/domain/service"
)

type windowEntry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps windows in a process-local map. Expired windows are swept
// lazily on every call, which bounds memory by the number of keys seen within one window.
type MemoryLimiter struct {
	mu       sync.Mutex
	entries  map[string]*windowEntry
	window   time.Duration
	capacity int
	now      func() time.Time
}

// MemoryOption customizes a MemoryLimiter.
type MemoryOption func(*MemoryLimiter)

// WithMemoryClock replaces the wall clock.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(l *MemoryLimiter) { l.now = now }
}

// NewMemoryLimiter creates an isolated limiter instance.
func NewMemoryLimiter(window time.Duration, capacity int, opts ...MemoryOption) *MemoryLimiter {
	l := &MemoryLimiter{
		entries:  make(map[string]*windowEntry),
		window:   window,
		capacity: capacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Allow records one request for key and reports whether it is admitted.
// The whole read-modify-write happens under one lock, so same-key requests are
// counted in lock acquisition order and no increment is lost.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (service.RateDecision, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	entry, ok := l.entries[key]
	if !ok || entry.resetAt.Before(now) {
		entry = &windowEntry{count: 1, resetAt: now.Add(l.window)}
		l.entries[key] = entry
	} else {
		entry.count++
	}

	return decide(entry.count, entry.resetAt, now, l.capacity), nil
}

// Len returns the number of tracked keys.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// sweep drops windows whose reset time has passed. Callers hold l.mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, entry := range l.entries {
		if entry.resetAt.Before(now) {
			delete(l.entries, key)
		}
	}
}
