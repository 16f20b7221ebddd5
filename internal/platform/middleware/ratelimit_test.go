package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func rateLimited(cfg RateLimitConfig) (echo.HandlerFunc, *echo.Echo) {
	return RateLimit(cfg)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}), echo.New()
}

func requestFrom(e *echo.Echo, ip string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRateLimit_WithinBurst(t *testing.T) {
	handler, e := rateLimited(RateLimitConfig{RequestsPerSecond: 10, BurstSize: 5})

	for i := 0; i < 5; i++ {
		c, rec := requestFrom(e, "10.0.0.1")
		if err := handler(c); err != nil {
			t.Fatalf("request %d: expected no error, got %v", i+1, err)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "10" {
			t.Errorf("request %d: unexpected X-RateLimit-Limit %q", i+1, rec.Header().Get("X-RateLimit-Limit"))
		}
	}
}

func TestRateLimit_ExceedsBurst(t *testing.T) {
	handler, e := rateLimited(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 2})

	for i := 0; i < 2; i++ {
		c, _ := requestFrom(e, "10.0.0.1")
		if err := handler(c); err != nil {
			t.Fatalf("request %d: expected no error, got %v", i+1, err)
		}
	}

	c, rec := requestFrom(e, "10.0.0.1")
	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
	retry, convErr := strconv.Atoi(rec.Header().Get("Retry-After"))
	if convErr != nil || retry < 1 {
		t.Errorf("expected Retry-After >= 1, got %q", rec.Header().Get("Retry-After"))
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("expected X-RateLimit-Remaining 0, got %q", rec.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimit_PerClientIsolation(t *testing.T) {
	handler, e := rateLimited(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})

	c, _ := requestFrom(e, "10.0.0.1")
	if err := handler(c); err != nil {
		t.Fatalf("first client: %v", err)
	}
	c, _ = requestFrom(e, "10.0.0.1")
	if err := handler(c); err == nil {
		t.Fatal("first client: expected rate limit error on second request")
	}
	c, _ = requestFrom(e, "10.0.0.2")
	if err := handler(c); err != nil {
		t.Fatalf("second client: expected separate bucket, got %v", err)
	}
}

func TestRateLimit_InvalidConfigFallsBack(t *testing.T) {
	handler, e := rateLimited(RateLimitConfig{})
	c, rec := requestFrom(e, "10.0.0.1")
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get("X-RateLimit-Limit") != "100" {
		t.Errorf("expected default limit 100, got %q", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestClientLimiters_EvictsIdle(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := start
	store := newClientLimiters(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1, IdleTTL: time.Minute})
	store.now = func() time.Time { return clock }
	store.lastSweep = start

	first := store.get("10.0.0.1")
	store.get("10.0.0.2")
	if n := len(store.limiters); n != 2 {
		t.Fatalf("expected 2 buckets, got %d", n)
	}

	clock = start.Add(30 * time.Second)
	if store.get("10.0.0.1") != first {
		t.Error("expected the same bucket within the idle window")
	}

	clock = start.Add(70 * time.Second)
	store.get("10.0.0.3")
	if n := len(store.limiters); n != 2 {
		t.Errorf("expected the idle bucket to be dropped, got %d buckets", n)
	}
	if _, ok := store.limiters["10.0.0.2"]; ok {
		t.Error("expected 10.0.0.2 to be evicted")
	}
	if store.limiters["10.0.0.1"].limiter != first {
		t.Error("expected the recently used bucket to survive")
	}
}
