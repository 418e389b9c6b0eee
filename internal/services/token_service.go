package services

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"walletboard/internal/config"
	"walletboard/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess = "access"

	// tolerated clock drift between the instance that issued a token and the one checking it
	tokenClockSkew = 30 * time.Second
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidTokenType  = errors.New("invalid token type")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService signs and verifies RS256 access tokens.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	ttl        time.Duration
	parser     *jwt.Parser
}

func NewTokenService(cfg *config.JWTConfig) TokenServiceInterface {
	return &TokenService{
		privateKey: cfg.PrivateKey,
		publicKey:  cfg.PublicKey,
		issuer:     cfg.Issuer,
		ttl:        cfg.AccessTokenDuration,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithIssuer(cfg.Issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(tokenClockSkew),
		),
	}
}

// GenerateAccessToken returns the signed token and its expiry.
func (ts *TokenService) GenerateAccessToken(account *models.Account) (string, time.Time, error) {
	if account == nil {
		return "", time.Time{}, errors.New("account cannot be nil")
	}

	now := time.Now()
	expiresAt := now.Add(ts.ttl)

	wallet := ""
	if account.WalletAddress != nil {
		wallet = *account.WalletAddress
	}

	claims := models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   account.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		AccountID:     account.ID.String(),
		Username:      account.Username,
		WalletAddress: wallet,
		TokenType:     TokenTypeAccess,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.privateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateAccessToken verifies signature, issuer and expiry and returns the claims.
func (ts *TokenService) ValidateAccessToken(tokenString string) (*models.AccessClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.AccessClaims{}
	_, err := ts.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return ts.publicKey, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return nil, ErrInvalidIssuer
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.TokenType != TokenTypeAccess {
		return nil, ErrInvalidTokenType
	}
	if _, err := claims.AccountUUID(); err != nil {
		return nil, fmt.Errorf("%w: account_id is not a UUID", ErrInvalidToken)
	}
	return claims, nil
}

// ExtractTokenFromHeader takes the credentials of a "Bearer" Authorization header.
// The scheme is matched case-insensitively.
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}
