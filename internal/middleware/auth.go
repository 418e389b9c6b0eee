package middleware

import (
	"errors"

	apperrors "walletboard/internal/errors"
	"walletboard/internal/handlers"
	"walletboard/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth rejects requests without a valid bearer token issued by wallet login.
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if code, ok := authenticate(c, tokenService); !ok {
				return handlers.SendError(c, code)
			}
			return next(c)
		}
	}
}

// OptionalAuth identifies the caller when a valid bearer token is present and
// lets the request through anonymously otherwise.
func OptionalAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authenticate(c, tokenService)
			return next(c)
		}
	}
}

// authenticate stores the token's identity on the context. On failure it returns
// the code RequireAuth answers with and leaves the context untouched.
func authenticate(c echo.Context, tokenService services.TokenServiceInterface) (apperrors.ErrorCode, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return apperrors.AuthMissingToken, false
	}

	token, err := tokenService.ExtractTokenFromHeader(header)
	if err != nil {
		return apperrors.AuthInvalidTokenFormat, false
	}

	claims, err := tokenService.ValidateAccessToken(token)
	if errors.Is(err, services.ErrExpiredToken) {
		return apperrors.AuthExpiredToken, false
	}
	if err != nil {
		return apperrors.AuthInvalidTokenFormat, false
	}

	accountID, err := claims.AccountUUID()
	if err != nil {
		return apperrors.AuthInvalidTokenFormat, false
	}

	c.Set(handlers.AccountIDContextKey, accountID)
	c.Set(handlers.UsernameContextKey, claims.Username)
	c.Set(handlers.WalletAddressContextKey, claims.WalletAddress)
	c.Set(handlers.TokenJTIContextKey, claims.ID)
	return "", true
}
