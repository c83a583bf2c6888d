package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
)

// Limiter decides whether one more request for key fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

func RateLimiter(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				// fail open
				c.Logger().Warnf("rate limiter unavailable: %v", err)
				return next(c)
			}

			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}

const sweepThreshold = 10000

type bucket struct {
	count int
	start time.Time
}

type MemoryLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	limit      int
	window     time.Duration
	now        func() time.Time
	sweepAfter int
	lastSweep  time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		buckets:    make(map[string]*bucket),
		limit:      limit,
		window:     window,
		now:        time.Now,
		sweepAfter: sweepThreshold,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	// at most one sweep per window; nothing can expire sooner than that
	if len(l.buckets) > l.sweepAfter && now.Sub(l.lastSweep) >= l.window {
		l.sweep(now)
		l.lastSweep = now
	}

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) > l.window {
		b = &bucket{start: now}
		l.buckets[key] = b
	}

	if b.count >= l.limit {
		return false, nil
	}

	b.count++
	return true, nil
}

func (l *MemoryLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.start) > l.window {
			delete(l.buckets, key)
		}
	}
}

// RedisLimiter shares fixed-window counters across instances. Each window
// gets its own key which expires with the window.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow sends SET NX EX and INCR in one pipeline, so a window key always
// carries its expiry before it is counted.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := l.windowKey(key, l.now())

	resps := l.client.DoMulti(
		ctx,
		l.client.B().Set().Key(windowKey).Value("0").Nx().ExSeconds(l.ttlSeconds()).Build(),
		l.client.B().Incr().Key(windowKey).Build(),
	)
	// SET NX replies nil when the window already exists
	if err := resps[0].Error(); err != nil && !rueidis.IsRedisNil(err) {
		return false, err
	}

	count, err := resps[1].AsInt64()
	if err != nil {
		return false, err
	}

	return count <= int64(l.limit), nil
}

func (l *RedisLimiter) ttlSeconds() int64 {
	seconds := int64(l.window / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}

func (l *RedisLimiter) windowKey(key string, now time.Time) string {
	windowStart := now.UnixNano() / int64(l.window)
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, windowStart)
}
