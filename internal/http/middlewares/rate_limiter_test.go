package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func TestMemoryLimiter_WindowReset(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewMemoryLimiter(2, time.Minute)
	limiter.now = clock.Now

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if ok, _ := limiter.Allow(ctx, "10.0.0.1"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	if ok, _ := limiter.Allow(ctx, "10.0.0.1"); ok {
		t.Fatal("third request in window should be rejected")
	}

	if ok, _ := limiter.Allow(ctx, "10.0.0.2"); !ok {
		t.Fatal("other clients have their own bucket")
	}

	clock.now = clock.now.Add(time.Minute + time.Second)
	if ok, _ := limiter.Allow(ctx, "10.0.0.1"); !ok {
		t.Fatal("request after window should be allowed")
	}
}

func TestMemoryLimiter_SweepOncePerWindow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewMemoryLimiter(5, time.Minute)
	limiter.now = clock.Now
	limiter.sweepAfter = 1

	ctx := context.Background()
	limiter.Allow(ctx, "a")
	limiter.Allow(ctx, "b")

	clock.now = clock.now.Add(2 * time.Minute)
	limiter.Allow(ctx, "c")
	if got := len(limiter.buckets); got != 1 {
		t.Fatalf("expected expired buckets to be swept, got %d buckets", got)
	}

	limiter.Allow(ctx, "d")
	clock.now = clock.now.Add(10 * time.Second)
	limiter.Allow(ctx, "e")
	if got := len(limiter.buckets); got != 3 {
		t.Fatalf("expected no second sweep inside the window, got %d buckets", got)
	}

	clock.now = clock.now.Add(2 * time.Minute)
	limiter.Allow(ctx, "f")
	if got := len(limiter.buckets); got != 1 {
		t.Fatalf("expected a sweep once the window passed, got %d buckets", got)
	}
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) {
	return s.allowed, s.err
}

func TestRateLimiterMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		limiter Limiter
		want    int
	}{
		{name: "allowed", limiter: stubLimiter{allowed: true}, want: http.StatusOK},
		{name: "rejected", limiter: stubLimiter{allowed: false}, want: http.StatusTooManyRequests},
		{name: "backend error fails open", limiter: stubLimiter{err: errors.New("redis down")}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(RateLimiter(tt.limiter))
			e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestRedisLimiter_WindowKey(t *testing.T) {
	limiter := NewRedisLimiter(nil, "rl", 10, time.Minute)

	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sameWindow := limiter.windowKey("1.2.3.4", start.Add(30*time.Second))
	if got := limiter.windowKey("1.2.3.4", start); got != sameWindow {
		t.Fatalf("expected same key within a window, got %q and %q", got, sameWindow)
	}

	if next := limiter.windowKey("1.2.3.4", start.Add(time.Minute)); next == sameWindow {
		t.Fatal("expected a new key for the next window")
	}
}

func TestRedisLimiter_TTLSeconds(t *testing.T) {
	tests := []struct {
		name   string
		window time.Duration
		want   int64
	}{
		{name: "minute", window: time.Minute, want: 60},
		{name: "sub second rounds up", window: 200 * time.Millisecond, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewRedisLimiter(nil, "rl", 10, tt.window)
			if got := limiter.ttlSeconds(); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
