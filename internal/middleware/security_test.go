package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveWithSecurityHeaders(t *testing.T, strictTransport bool, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := SecurityHeaders(strictTransport)(next)(c)
	return rec, err
}

func TestSecurityHeaders(t *testing.T) {
	rec, err := serveWithSecurityHeaders(t, false, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	headers := rec.Header()
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))
	assert.Equal(t, "geolocation=(), microphone=(), camera=()", headers.Get("Permissions-Policy"))
	assert.Equal(t, "no-store, private", headers.Get("Cache-Control"))
	assert.Equal(t, "Authorization, Cookie", headers.Get("Vary"))
	assert.Empty(t, headers.Get("Strict-Transport-Security"))
}

func TestSecurityHeaders_StrictTransport(t *testing.T) {
	rec, err := serveWithSecurityHeaders(t, true, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	assert.NoError(t, err)
	assert.Equal(t, "max-age=31536000; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHeaders_NextErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	nextCalled := false

	rec, err := serveWithSecurityHeaders(t, false, func(c echo.Context) error {
		nextCalled = true
		return boom
	})
	assert.True(t, nextCalled)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
