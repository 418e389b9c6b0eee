package dto

import "time"

const (
	LoginSuccessMessage = "Login successful."
	LoginFailedMessage  = "Authentication failed."
)

// Auth Request DTOs

// WalletLoginRequest carries the signed challenge. Both fields are checked by the
// authenticator so that a blank attempt still consumes the session's nonce.
type WalletLoginRequest struct {
	WalletAddress string `json:"wallet_address"`
	Signature     string `json:"signature"`
}

// Auth Response DTOs

// NonceResponse carries the challenge the wallet has to sign
type NonceResponse struct {
	Nonce string `json:"nonce"`
}

// TokenResponse is returned after a successful wallet login
type TokenResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	AccessToken   string    `json:"access_token"`
	TokenType     string    `json:"token_type"`
	ExpiresAt     time.Time `json:"expires_at"`
	AccountID     string    `json:"account_id"`
	Username      string    `json:"username"`
	WalletAddress string    `json:"wallet_address"`
}

// LoginFailedResponse is the single body sent for every rejected login
type LoginFailedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewLoginFailedResponse() LoginFailedResponse {
	return LoginFailedResponse{Success: false, Message: LoginFailedMessage}
}
