package handlers

import (
	"log/slog"

	"walletboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers answer failures with SendError, which carries a catalogue code, or with
// SendSystemError, which logs the cause and returns a generic 500 body.

// ErrorResponse is the body written by SendError and SendSystemError.
type ErrorResponse = errors.ErrorResponse

// SendError writes the catalogue error for code with the request's trace ID.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, TraceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError logs err and hides it behind SYSTEM_001.
func SendSystemError(c echo.Context, err error) error {
	response, cause := errors.WrapSystemError(err, TraceID(c))

	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", response.Error.TraceID,
		"route", c.Path(),
		"method", c.Request().Method,
		"error", cause,
	)

	return c.JSON(response.GetHTTPStatus(), response)
}
