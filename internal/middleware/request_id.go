package middleware

import (
	"regexp"

	"walletboard/internal/handlers"
	"walletboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses
	TraceIDHeader     = echo.HeaderXRequestID
	TraceIDContextKey = handlers.TraceIDContextKey
)

// caller-supplied IDs end up in logs and audit rows
var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{8,64}$`)

// RequestID assigns each request a trace ID. A well-formed X-Request-ID from the caller is
// kept; anything else is replaced. The ID is echoed in the response, stored on the echo
// context and attached to the request context as the correlation ID for service logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if !traceIDPattern.MatchString(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(services.WithCorrelationID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or "" outside RequestID
func GetTraceID(c echo.Context) string {
	return handlers.TraceID(c)
}
