package ratelimit

import (
	"context"
	"time"

	"countdown-server/internal/observability"
)

const defaultWindow = time.Minute

// WindowCounter records a hit and reports the hits inside the trailing window.
// *redis.Client implements it.
type WindowCounter interface {
	IsEnabled() bool
	SlidingWindowHit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, error)
}

// Limiter is a sliding-window limiter keyed by caller. With no Redis
// configured, or a non-positive limit, every attempt is allowed.
type Limiter struct {
	counter WindowCounter
	limit   int
	window  time.Duration
	now     func() time.Time
	logger  *observability.Logger
}

// NewLimiter allows up to limit attempts per key in any one-minute window.
func NewLimiter(counter WindowCounter, limit int, logger *observability.Logger) *Limiter {
	return &Limiter{
		counter: counter,
		limit:   limit,
		window:  defaultWindow,
		now:     time.Now,
		logger:  logger,
	}
}

// Allow records an attempt for key and reports whether it is within the limit.
// Errors come back with allowed=false; callers decide whether to fail open.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.limit <= 0 || l.counter == nil || !l.counter.IsEnabled() {
		return true, nil
	}

	count, err := l.counter.SlidingWindowHit(ctx, "rl:"+key, l.now(), l.window)
	if err != nil {
		return false, err
	}
	if count > int64(l.limit) {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "rate_limit_key", Value: key},
			observability.Field{Key: "limit", Value: l.limit},
			observability.Field{Key: "count", Value: count},
		)
		l.logger.Warn(ctx, "rate limit exceeded")
		return false, nil
	}
	return true, nil
}
