package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims is the payload of the bearer token issued after a wallet login.
type AccessClaims struct {
	jwt.RegisteredClaims
	AccountID     string `json:"account_id"`
	Username      string `json:"username,omitempty"`
	WalletAddress string `json:"wallet_address,omitempty"`
	TokenType     string `json:"token_type"`
}

func (c *AccessClaims) AccountUUID() (uuid.UUID, error) {
	return uuid.Parse(c.AccountID)
}
