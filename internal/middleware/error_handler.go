package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"walletboard/internal/errors"
	"walletboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler renders every error that escapes a handler as an ErrorResponse.
// Handlers normally answer through SendError themselves; what reaches this point is
// router errors (404, 405), validator failures and unexpected errors.
func NewHTTPErrorHandler(metrics services.MetricsRecorderInterface) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		response, status := renderError(err, traceID)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(c.Request().Context(), level, "request error",
			"trace_id", traceID,
			"error_code", response.Error.Code,
			"status", status,
			"route", c.Path(),
			"method", c.Request().Method,
			"error", err.Error(),
		)

		metrics.IncrementCounter(services.MetricAPIError, map[string]string{
			"code":   response.Error.Code,
			"route":  c.Path(),
			"status": strconv.Itoa(status),
		})

		if sendErr := c.JSON(status, response); sendErr != nil {
			slog.Error("failed to write error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

func renderError(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		response := errors.NewErrorResponse(
			statusErrorCode(httpErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprint(httpErr.Message)),
		)
		return response, httpErr.Code
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		return validationResponse(fieldErrs, traceID), http.StatusBadRequest
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

// validationResponse narrows a lone theme or wallet failure to its dedicated code.
func validationResponse(fieldErrs validator.ValidationErrors, traceID string) *errors.ErrorResponse {
	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), describeRule(fe)))
	}
	sort.Strings(details)

	code := errors.ValidationGeneral
	if len(fieldErrs) == 1 {
		switch fieldErrs[0].Tag() {
		case "theme_color":
			code = errors.ValidationInvalidThemeColor
		case "wallet_address":
			code = errors.ValidationInvalidWalletAddress
		case "required":
			code = errors.ValidationRequiredField
		}
	}

	return errors.NewErrorResponse(code, traceID, errors.WithDetails(details...))
}

func statusErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInsufficientPermission
	case http.StatusNotFound:
		return errors.SystemNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "nickname":
		return "must be at most 50 characters without control characters"
	case "theme_color":
		return "must be one of: default, crimson, ocean, forest"
	case "wallet_address":
		return "must be a 0x-prefixed 20-byte hex address"
	default:
		return fmt.Sprintf("failed the %s rule", fe.Tag())
	}
}
