package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiter is a fixed-window counter. Any hit that finds the key without a
// TTL sets it, so a failed Expire cannot leave a key counting forever.
type RateLimiter struct {
	client Counter
}

func NewRateLimiter(client Counter) *RateLimiter {
	return &RateLimiter{client: client}
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, ttl, err := r.client.IncrTTL(ctx, key)
	if err != nil {
		return false, err
	}

	if ttl < 0 {
		err = r.client.Expire(ctx, key, window)
		if err != nil {
			return false, err
		}
	}

	if count > int64(limit) {
		return false, nil
	}

	return true, nil
}

func ClientKey(route, clientIP string) string {
	return fmt.Sprintf("rate_limit:%s:%s", route, clientIP)
}
