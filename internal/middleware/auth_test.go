package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"walletboard/internal/config"
	"walletboard/internal/handlers"
	"walletboard/internal/models"
	"walletboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	account      *models.Account
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.account = models.NewWalletAccount("0x52908400098527886E0F7030069857D2E4169EE7")
	s.account.ID = uuid.New()
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) createTokenService(duration time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: duration,
	})
}

func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	if next == nil {
		next = func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
		}
	}

	s.NoError(mw(next)(s.e.NewContext(req, rec)))
	return rec
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken(s.account)
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService), "Bearer "+token, func(c echo.Context) error {
		s.Equal(s.account.ID, c.Get(handlers.AccountIDContextKey))
		s.Equal(s.account.Username, c.Get(handlers.UsernameContextKey))
		s.Equal(*s.account.WalletAddress, c.Get(handlers.WalletAddressContextKey))
		s.NotEmpty(c.Get(handlers.TokenJTIContextKey))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec := s.serve(RequireAuth(s.tokenService), "", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	rec := s.serve(RequireAuth(s.tokenService), "InvalidToken", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	rec := s.serve(RequireAuth(s.tokenService), "Bearer invalid.jwt.token", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	shortTokenService := s.createTokenService(-time.Minute)

	token, _, err := shortTokenService.GenerateAccessToken(s.account)
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(shortTokenService), "Bearer "+token, nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	token, _, err := s.createTokenService(time.Hour).GenerateAccessToken(s.account)
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService), "Bearer "+token, nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestOptionalAuth_Anonymous() {
	rec := s.serve(OptionalAuth(s.tokenService), "", func(c echo.Context) error {
		s.Nil(c.Get(handlers.AccountIDContextKey))
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestOptionalAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken(s.account)
	s.Require().NoError(err)

	rec := s.serve(OptionalAuth(s.tokenService), "Bearer "+token, func(c echo.Context) error {
		s.Equal(s.account.ID, c.Get(handlers.AccountIDContextKey))
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestOptionalAuth_InvalidTokenIsIgnored() {
	for _, header := range []string{"InvalidToken", "Bearer invalid.jwt.token"} {
		called := false
		rec := s.serve(OptionalAuth(s.tokenService), header, func(c echo.Context) error {
			called = true
			s.Nil(c.Get(handlers.AccountIDContextKey))
			return c.NoContent(http.StatusOK)
		})

		s.True(called, header)
		s.Equal(http.StatusOK, rec.Code)
	}
}
