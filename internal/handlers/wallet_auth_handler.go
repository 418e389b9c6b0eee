package handlers

import (
	"net/http"

	"walletboard/internal/config"
	"walletboard/internal/dto"
	"walletboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// WalletAuthHandler serves the nonce challenge and the signed wallet login
type WalletAuthHandler struct {
	authService services.WalletAuthServiceInterface
	security    config.SecurityConfig
}

func NewWalletAuthHandler(authService services.WalletAuthServiceInterface, security *config.SecurityConfig) *WalletAuthHandler {
	return &WalletAuthHandler{
		authService: authService,
		security:    *security,
	}
}

// GetNonce issues a fresh challenge for the caller's session, starting a session if there is none.
// POST /get-nonce
func (h *WalletAuthHandler) GetNonce(c echo.Context) error {
	sessionID := h.sessionID(c)
	if sessionID == "" {
		sessionID = uuid.NewString()
		h.setSessionCookie(c, sessionID)
	}

	nonce, err := h.authService.IssueChallenge(c.Request().Context(), sessionID, ClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NonceResponse{Nonce: nonce})
}

// WalletLogin verifies the signature over the session's challenge and issues an access token.
// Every rejection gets the same 401 body. An unreadable body is treated as a blank attempt
// so the challenge is still spent.
// POST /wallet-login
func (h *WalletAuthHandler) WalletLogin(c echo.Context) error {
	var req dto.WalletLoginRequest
	if err := c.Bind(&req); err != nil {
		req = dto.WalletLoginRequest{}
	}

	tokens, err := h.authService.Login(c.Request().Context(), h.sessionID(c), &req, ClientIP(c), c.Request().UserAgent())
	if err != nil {
		if services.IsAuthenticationFailure(err) {
			return c.JSON(http.StatusUnauthorized, dto.NewLoginFailedResponse())
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

func (h *WalletAuthHandler) sessionID(c echo.Context) string {
	cookie, err := c.Cookie(h.security.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *WalletAuthHandler) setSessionCookie(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     h.security.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.security.SessionCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.security.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
