package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/HammerMeetNail/bloomnext/internal/logging"
)

// CounterStore increments a fixed-window counter and returns its new value.
type CounterStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounterStore keeps rate limit counters in Redis.
type RedisCounterStore struct {
	client *redis.Client
}

func NewRedisCounterStore(client *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

func (s *RedisCounterStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	// The expiry is set once per window so the count resets on schedule.
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimiter enforces a fixed-window request limit per key. It fails open
// when no store is configured or the store errors.
type RateLimiter struct {
	store   CounterStore
	limit   int64
	window  time.Duration
	prefix  string
	keyFunc func(*http.Request) string
	now     func() time.Time
}

// NewRateLimiter creates a limiter. A nil keyFunc keys requests by client IP.
func NewRateLimiter(store CounterStore, limit int64, window time.Duration, prefix string, keyFunc func(*http.Request) string) *RateLimiter {
	if keyFunc == nil {
		keyFunc = GetClientIP
	}
	return &RateLimiter{
		store:   store,
		limit:   limit,
		window:  window,
		prefix:  prefix,
		keyFunc: keyFunc,
		now:     time.Now,
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.store == nil {
			next.ServeHTTP(w, r)
			return
		}

		now := rl.now()
		windowEnd := now.Truncate(rl.window).Add(rl.window)
		key := fmt.Sprintf("%s:%s:%d", rl.prefix, rl.keyFunc(r), windowEnd.Unix())

		count, err := rl.store.Increment(r.Context(), key, rl.window)
		if err != nil {
			logging.FromContext(r.Context()).Warn("Rate limiter unavailable, allowing request", map[string]interface{}{
				"prefix": rl.prefix,
				"error":  err.Error(),
			})
			next.ServeHTTP(w, r)
			return
		}

		remaining := rl.limit - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", windowEnd.Unix()))

		if count > rl.limit {
			retryAfter := int64(windowEnd.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests. Please try again later."}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClientIP returns the originating client address, preferring the first
// X-Forwarded-For entry, then X-Real-IP, then the connection's remote address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if host, _, err := net.SplitHostPort(first); err == nil {
			return host
		}
		if first != "" {
			return first
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
