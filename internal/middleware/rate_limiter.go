package middleware

import (
	"context"
	"time"

	"walletboard/internal/errors"
	"walletboard/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 5
	defaultBurst             = 10
	visitorIdleTTL           = 3 * time.Minute
	visitorSweepInterval     = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorLimiter keeps one token bucket per client IP.
type visitorLimiter struct {
	visitors *xsync.Map[string, *visitor]
	limit    rate.Limit
	burst    int
}

func newVisitorLimiter(requestsPerSecond, burst int) *visitorLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return &visitorLimiter{
		visitors: xsync.NewMap[string, *visitor](),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (l *visitorLimiter) allow(ip string, now time.Time) bool {
	v, _ := l.visitors.Compute(ip, func(existing *visitor, loaded bool) (*visitor, xsync.ComputeOp) {
		if !loaded {
			return &visitor{limiter: rate.NewLimiter(l.limit, l.burst), lastSeen: now}, xsync.UpdateOp
		}
		existing.lastSeen = now
		return existing, xsync.UpdateOp
	})
	return v.limiter.AllowN(now, 1)
}

// sweep drops visitors idle for longer than ttl.
func (l *visitorLimiter) sweep(now time.Time, ttl time.Duration) {
	l.visitors.Range(func(ip string, v *visitor) bool {
		l.visitors.Compute(ip, func(existing *visitor, loaded bool) (*visitor, xsync.ComputeOp) {
			if loaded && now.Sub(existing.lastSeen) > ttl {
				return nil, xsync.DeleteOp
			}
			return existing, xsync.CancelOp
		})
		return true
	})
}

// RateLimiter limits requests per client IP until ctx is done.
func RateLimiter(ctx context.Context, requestsPerSecond, burst int) echo.MiddlewareFunc {
	limiter := newVisitorLimiter(requestsPerSecond, burst)

	go func() {
		ticker := time.NewTicker(visitorSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				limiter.sweep(now, visitorIdleTTL)
			}
		}
	}()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.allow(handlers.ClientIP(c), time.Now()) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}
