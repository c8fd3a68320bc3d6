package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 5) // 10 per minute, burst of 5
	defer rl.Stop()

	clientIP := "203.0.113.10"

	// First 5 requests should be allowed (burst)
	for i := 0; i < 5; i++ {
		if !rl.Allow(clientIP) {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// 6th request should be rate limited (exceeded burst)
	if rl.Allow(clientIP) {
		t.Error("Request 6 should be rate limited")
	}
}

func TestRateLimiter_DifferentClients(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 3)
	defer rl.Stop()

	client1 := "203.0.113.10"
	client2 := "203.0.113.20"

	// Exhaust client1's burst
	for i := 0; i < 3; i++ {
		if !rl.Allow(client1) {
			t.Errorf("Client1 request %d should be allowed", i+1)
		}
	}

	// Client1 should be rate limited
	if rl.Allow(client1) {
		t.Error("Client1 should be rate limited")
	}

	// Client2 should still have its full burst
	for i := 0; i < 3; i++ {
		if !rl.Allow(client2) {
			t.Errorf("Client2 request %d should be allowed", i+1)
		}
	}
}

func TestRateLimitMiddleware_RejectsAfterBurst(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(10, 2) // Small burst for testing
	defer rl.Stop()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}

	// First 2 requests should succeed (burst)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/metrics", nil)
		req.RemoteAddr = "203.0.113.10:5000"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RateLimitMiddleware(rl)(handler)(c)
		if err != nil {
			t.Fatalf("Request %d: Expected no error, got %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("Request %d: Expected status 200, got %d", i+1, rec.Code)
		}
	}

	// 3rd request should be rate limited
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/metrics", nil)
	req.RemoteAddr = "203.0.113.10:5000"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RateLimitMiddleware(rl)(handler)(c)
	if err == nil {
		t.Fatal("Expected rate limit error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("Expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", httpErr.Code)
	}
}

func TestRateLimitMiddleware_IsolatesClients(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(10, 1)
	defer rl.Stop()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}

	// Exhaust the first client's burst
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req.RemoteAddr = "203.0.113.10:5000"
	rec := httptest.NewRecorder()
	if err := RateLimitMiddleware(rl)(handler)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// A different client is unaffected
	req = httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req.RemoteAddr = "203.0.113.20:5000"
	rec = httptest.NewRecorder()
	if err := RateLimitMiddleware(rl)(handler)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error for second client, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200 for second client, got %d", rec.Code)
	}
}
