package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthAccountLocked          ErrorCode = "AUTH_006"
	AuthMissingSession         ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral              ErrorCode = "VALIDATION_001"
	ValidationRequiredField        ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat        ErrorCode = "VALIDATION_003"
	ValidationOutOfRange           ErrorCode = "VALIDATION_004"
	ValidationInvalidWalletAddress ErrorCode = "VALIDATION_005"
	ValidationInvalidThemeColor    ErrorCode = "VALIDATION_006"
	ValidationInvalidSort          ErrorCode = "VALIDATION_007"
)

// Post error codes (POST_*)
const (
	PostNotFound     ErrorCode = "POST_001"
	PostEmptyContent ErrorCode = "POST_002"
	PostInvalidID    ErrorCode = "POST_003"
)

// Profile error codes (PROFILE_*)
const (
	ProfileNotFound      ErrorCode = "PROFILE_001"
	ProfilePrivate       ErrorCode = "PROFILE_002"
	ProfileNicknameTaken ErrorCode = "PROFILE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemUpstreamError      ErrorCode = "SYSTEM_007"
	SystemNotFound           ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Authentication failed.",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthAccountLocked:          "Account is locked or disabled",
	AuthMissingSession:         "Session cookie is required",

	// Validation errors
	ValidationGeneral:              "Validation failed",
	ValidationRequiredField:        "Required field is missing",
	ValidationInvalidFormat:        "Invalid field format",
	ValidationOutOfRange:           "Field value is out of allowed range",
	ValidationInvalidWalletAddress: "Invalid wallet address",
	ValidationInvalidThemeColor:    "Invalid theme color",
	ValidationInvalidSort:          "Sort must be one of: newest, likes",

	// Post errors
	PostNotFound:     "Post not found",
	PostEmptyContent: "Post content is required",
	PostInvalidID:    "Invalid post ID format",

	// Profile errors
	ProfileNotFound:      "Profile not found",
	ProfilePrivate:       "This profile is private",
	ProfileNicknameTaken: "Nickname is already taken",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemUpstreamError:      "Upstream data provider is unavailable",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
