package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// Limiter is a fixed-window request counter kept in Redis, so the limit
// holds across every API instance sharing the same Redis.
type Limiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

// NewLimiter allows limit requests per key in each window
func NewLimiter(client *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{
		redis:  client,
		limit:  limit,
		window: window,
	}
}

// Allow counts a request for key and reports whether it is within the limit.
// The window is re-armed whenever the key has no expiry, so a failed EXPIRE
// cannot leave a counter that never resets.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	k := keyPrefix + key

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := l.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		ttl = pipe.TTL(ctx, k)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit: %w", err)
	}

	// TTL reports -1 for a key without expiry
	if ttl.Val() < 0 {
		if err := l.redis.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return incr.Val() <= int64(l.limit), nil
}
