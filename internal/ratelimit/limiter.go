// Package ratelimit is a fixed-window request counter kept in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

type ActionConfig struct {
	Limit  int64
	Window time.Duration
}

// Storage increments a counter that expires after ttl and reports its remaining
// lifetime.
type Storage interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

type Limiter struct {
	storage  Storage
	limits   map[string]ActionConfig
	fallback ActionConfig
	now      func() time.Time
}

type CheckResult struct {
	Allowed   bool  `json:"allowed"`
	Remaining int64 `json:"remaining"`
	ResetAt   int64 `json:"reset_at"`
	Limit     int64 `json:"limit"`
}

// NewLimiter applies limits per action; actions without an entry get fallback.
func NewLimiter(storage Storage, limits map[string]ActionConfig, fallback ActionConfig) *Limiter {
	return &Limiter{storage: storage, limits: limits, fallback: fallback, now: time.Now}
}

func (l *Limiter) Check(ctx context.Context, clientID, action string) (*CheckResult, error) {
	config, ok := l.limits[action]
	if !ok {
		config = l.fallback
	}

	key := fmt.Sprintf("rate:%s:%s", clientID, action)

	count, err := l.storage.Incr(ctx, key, config.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to increment counter: %w", err)
	}

	ttl, err := l.storage.TTL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get TTL: %w", err)
	}

	resetAt := l.now().Add(ttl).Unix()
	remaining := config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &CheckResult{
		Allowed:   count <= config.Limit,
		Remaining: remaining,
		ResetAt:   resetAt,
		Limit:     config.Limit,
	}, nil
}
