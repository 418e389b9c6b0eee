package errors

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines.
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the catalogue message for the code.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// WrapSystemError answers with SYSTEM_001 and hands err back for server-side logging only.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var httpStatuses = map[ErrorCode]int{
	AuthInvalidCredentials:     http.StatusUnauthorized,
	AuthMissingToken:           http.StatusUnauthorized,
	AuthExpiredToken:           http.StatusUnauthorized,
	AuthInvalidTokenFormat:     http.StatusUnauthorized,
	AuthMissingSession:         http.StatusUnauthorized,
	AuthInsufficientPermission: http.StatusForbidden,
	AuthAccountLocked:          http.StatusForbidden,

	ValidationGeneral:              http.StatusBadRequest,
	ValidationRequiredField:        http.StatusBadRequest,
	ValidationInvalidFormat:        http.StatusBadRequest,
	ValidationOutOfRange:           http.StatusBadRequest,
	ValidationInvalidWalletAddress: http.StatusBadRequest,
	ValidationInvalidThemeColor:    http.StatusBadRequest,
	ValidationInvalidSort:          http.StatusBadRequest,

	PostNotFound:     http.StatusNotFound,
	PostEmptyContent: http.StatusBadRequest,
	PostInvalidID:    http.StatusBadRequest,

	ProfileNotFound:      http.StatusNotFound,
	ProfilePrivate:       http.StatusForbidden,
	ProfileNicknameTaken: http.StatusConflict,

	SystemNotFound:           http.StatusNotFound,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemUpstreamError:      http.StatusBadGateway,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus maps a code to its status; anything not listed is a 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
