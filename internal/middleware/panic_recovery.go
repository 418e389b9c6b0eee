package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"walletboard/internal/errors"
	"walletboard/internal/handlers"
	"walletboard/internal/services"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into the standard 500 body and counts it per route.
// A response that was already partly written is left alone.
func PanicRecovery(metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				traceID := GetTraceID(c)
				attrs := []any{
					slog.String("trace_id", traceID),
					slog.String("panic", fmt.Sprint(r)),
					slog.String("route", c.Path()),
					slog.String("method", c.Request().Method),
					slog.String("stack_trace", string(debug.Stack())),
				}
				if accountID, ok := c.Get(handlers.AccountIDContextKey).(fmt.Stringer); ok {
					attrs = append(attrs, slog.String("account_id", accountID.String()))
				}
				slog.Error("panic recovered", attrs...)
				metrics.IncrementCounter(services.MetricPanicRecovered, map[string]string{"route": c.Path()})

				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}
