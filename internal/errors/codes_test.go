package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

var allCodes = []ErrorCode{
	AuthInvalidCredentials,
	AuthMissingToken,
	AuthExpiredToken,
	AuthInvalidTokenFormat,
	AuthInsufficientPermission,
	AuthAccountLocked,
	AuthMissingSession,
	ValidationGeneral,
	ValidationRequiredField,
	ValidationInvalidFormat,
	ValidationOutOfRange,
	ValidationInvalidWalletAddress,
	ValidationInvalidThemeColor,
	ValidationInvalidSort,
	PostNotFound,
	PostEmptyContent,
	PostInvalidID,
	ProfileNotFound,
	ProfilePrivate,
	ProfileNicknameTaken,
	SystemInternalError,
	SystemDatabaseError,
	SystemServiceUnavailable,
	SystemConfigurationError,
	SystemUnexpectedError,
	SystemRateLimitExceeded,
	SystemUpstreamError,
	SystemNotFound,
}

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "Auth Invalid Credentials", code: AuthInvalidCredentials, expected: "Authentication failed."},
		{name: "Auth Missing Session", code: AuthMissingSession, expected: "Session cookie is required"},
		{name: "Validation Sort", code: ValidationInvalidSort, expected: "Sort must be one of: newest, likes"},
		{name: "Post Not Found", code: PostNotFound, expected: "Post not found"},
		{name: "Profile Private", code: ProfilePrivate, expected: "This profile is private"},
		{name: "System Internal Error", code: SystemInternalError, expected: "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes {
		s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
	}

	for _, code := range []ErrorCode{"INVALID_001", "UNKNOWN_CODE", "", "AUTH_999", "CUSTOMER_001"} {
		s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
	s.Len(seen, len(errorMessages))
}

func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	prefixes := []string{"AUTH_", "VALIDATION_", "POST_", "PROFILE_", "SYSTEM_"}

	for _, code := range allCodes {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
				break
			}
		}
		s.True(matched, "Error code %s has an unknown prefix", code)
	}
}

func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes {
		message := GetErrorMessage(code)
		s.NotEmpty(message, "Error code %s should have a message", code)
		s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)
	}
}
