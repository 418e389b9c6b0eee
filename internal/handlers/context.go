package handlers

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Keys the middleware chain stores on the echo context.
const (
	TraceIDContextKey       = "trace_id"
	AccountIDContextKey     = "account_id"
	UsernameContextKey      = "username"
	WalletAddressContextKey = "wallet_address"
	TokenJTIContextKey      = "token_jti"
)

// TraceID returns the request's trace ID, or "" when RequestID did not run.
func TraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// currentAccount returns the account authenticated by the bearer token.
func currentAccount(c echo.Context) (uuid.UUID, bool) {
	accountID, ok := c.Get(AccountIDContextKey).(uuid.UUID)
	return accountID, ok && accountID != uuid.Nil
}

// viewerID is the caller on optionally authenticated routes, nil when anonymous.
func viewerID(c echo.Context) *uuid.UUID {
	accountID, ok := currentAccount(c)
	if !ok {
		return nil
	}
	return &accountID
}

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer address.
func ClientIP(c echo.Context) string {
	header := c.Request().Header
	if xff := header.Get(echo.HeaderXForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(header.Get(echo.HeaderXRealIP)); xri != "" {
		return xri
	}
	return c.RealIP()
}

// pageParam reads the 1-based page query parameter. Missing, malformed and
// non-positive values all mean the first page.
func pageParam(c echo.Context) int {
	n, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func pageOffset(page, perPage int) int {
	return (page - 1) * perPage
}
