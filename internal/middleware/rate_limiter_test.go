package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func rateLimitedHandler(t *testing.T, rps, burst int) echo.HandlerFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return RateLimiter(ctx, rps, burst)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func serveFrom(handler echo.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/wallet-login", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	handler := rateLimitedHandler(t, 2, 4)

	for i := 0; i < 4; i++ {
		assert.Equal(t, http.StatusOK, serveFrom(handler, "192.168.1.2:12345").Code)
	}

	rec := serveFrom(handler, "192.168.1.2:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_DefaultsWhenUnset(t *testing.T) {
	handler := rateLimitedHandler(t, 0, 0)

	for i := 0; i < defaultBurst; i++ {
		assert.Equal(t, http.StatusOK, serveFrom(handler, "10.0.0.1:1").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, serveFrom(handler, "10.0.0.1:1").Code)
}

func TestRateLimiter_IndependentIPs(t *testing.T) {
	handler := rateLimitedHandler(t, 1, 2)

	for _, ip := range []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"} {
		for i := 0; i < 2; i++ {
			assert.Equal(t, http.StatusOK, serveFrom(handler, ip).Code, ip)
		}
	}
}

func TestRateLimiter_Concurrency(t *testing.T) {
	handler := rateLimitedHandler(t, 5, 10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	codes := map[int]int{}

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := serveFrom(handler, "192.168.1.100:12345")
			mu.Lock()
			codes[rec.Code]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, codes[http.StatusOK], 10)
	assert.Greater(t, codes[http.StatusTooManyRequests], 0)
	assert.Equal(t, 20, codes[http.StatusOK]+codes[http.StatusTooManyRequests])
}

func TestVisitorLimiter_Sweep(t *testing.T) {
	limiter := newVisitorLimiter(5, 10)
	now := time.Now()

	limiter.allow("old_ip", now.Add(-5*time.Minute))
	limiter.allow("new_ip", now)

	limiter.sweep(now, visitorIdleTTL)

	_, oldExists := limiter.visitors.Load("old_ip")
	_, newExists := limiter.visitors.Load("new_ip")
	assert.False(t, oldExists)
	assert.True(t, newExists)
}
