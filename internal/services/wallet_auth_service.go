package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"walletboard/internal/dto"
	"walletboard/internal/models"
	"walletboard/internal/repositories"
)

const nonceBytes = 16

var (
	ErrMissingChallenge   = errors.New("no outstanding challenge for session")
	ErrMissingCredentials = errors.New("wallet address and signature are required")
	ErrInvalidSignature   = errors.New("signature could not be verified")
	ErrAddressMismatch    = errors.New("signature does not match wallet address")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrMissingSession     = errors.New("session ID is required")
)

// IsAuthenticationFailure reports whether err is one of the login rejections that share one public response.
func IsAuthenticationFailure(err error) bool {
	return errors.Is(err, ErrMissingChallenge) ||
		errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrAddressMismatch) ||
		errors.Is(err, ErrAccountInactive)
}

// WalletAuthService authenticates accounts by a signed one-time challenge
type WalletAuthService struct {
	sessions     SessionStoreInterface
	recoverer    SignatureRecovererInterface
	accountRepo  repositories.AccountRepositoryInterface
	auditService AuditServiceInterface
	tokenService TokenServiceInterface
	metrics      MetricsRecorderInterface
	challengeTTL time.Duration
	logger       *slog.Logger
}

func NewWalletAuthService(
	sessions SessionStoreInterface,
	recoverer SignatureRecovererInterface,
	accountRepo repositories.AccountRepositoryInterface,
	auditService AuditServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	challengeTTL time.Duration,
	logger *slog.Logger,
) WalletAuthServiceInterface {
	return &WalletAuthService{
		sessions:     sessions,
		recoverer:    recoverer,
		accountRepo:  accountRepo,
		auditService: auditService,
		tokenService: tokenService,
		metrics:      metrics,
		challengeTTL: challengeTTL,
		logger:       logger,
	}
}

// IssueChallenge stores a fresh nonce for the session, replacing any outstanding one.
func (s *WalletAuthService) IssueChallenge(ctx context.Context, sessionID, ipAddress, userAgent string) (string, error) {
	if sessionID == "" {
		return "", ErrMissingSession
	}

	nonce, err := generateNonce()
	if err != nil {
		return "", err
	}

	if err := s.sessions.Put(ctx, sessionID, nonce, s.challengeTTL); err != nil {
		return "", fmt.Errorf("failed to store challenge: %w", err)
	}

	s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": "challenge_issued"})
	if err := s.auditService.LogNonceIssued(sessionID, ipAddress, userAgent); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", models.AuditActionNonceIssued)
	}

	return nonce, nil
}

// Authenticate verifies the signature over the session's challenge and returns the
// account bound to the signing wallet, creating it on first login. The challenge is
// consumed whatever the outcome.
func (s *WalletAuthService) Authenticate(ctx context.Context, sessionID, walletAddress, signature, ipAddress, userAgent string) (*models.Account, error) {
	claimed := models.NormalizeWalletAddress(walletAddress)

	nonce, err := s.takeChallenge(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrChallengeNotFound) {
			return nil, s.reject(claimed, "missing_challenge", ErrMissingChallenge, ipAddress, userAgent)
		}
		return nil, err
	}

	if claimed == "" || strings.TrimSpace(signature) == "" {
		return nil, s.reject(claimed, "missing_credentials", ErrMissingCredentials, ipAddress, userAgent)
	}

	recovered, err := s.recoverer.RecoverAddress(HashChallenge(nonce), signature)
	if err != nil {
		s.logger.Debug("signature recovery failed", slog.String("error", err.Error()))
		return nil, s.reject(claimed, "invalid_signature", ErrInvalidSignature, ipAddress, userAgent)
	}

	if !strings.EqualFold(recovered.Hex(), claimed) {
		return nil, s.reject(claimed, "address_mismatch", ErrAddressMismatch, ipAddress, userAgent)
	}

	account, created, err := s.accountRepo.GetOrCreateByWalletAddress(claimed)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account for wallet: %w", err)
	}

	if !account.IsActive {
		return nil, s.reject(claimed, "account_inactive", ErrAccountInactive, ipAddress, userAgent)
	}

	if created {
		s.logger.Info("account created for wallet",
			slog.String("account_id", account.ID.String()),
			slog.String("wallet_address", claimed),
		)
		if err := s.auditService.LogAccountCreated(account.ID, claimed, ipAddress, userAgent); err != nil {
			s.logAuditFailure(err, models.AuditActionAccountCreated)
		}
	}

	now := time.Now()
	if err := s.accountRepo.UpdateLastLogin(account.ID, now); err != nil {
		s.logger.Warn("failed to record last login",
			slog.String("account_id", account.ID.String()),
			slog.String("error", err.Error()),
		)
	} else {
		account.LastLoginAt = &now
	}

	s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": "login_success"})
	if err := s.auditService.LogWalletLogin(account.ID, claimed, ipAddress, userAgent); err != nil {
		s.logAuditFailure(err, models.AuditActionWalletLogin)
	}

	return account, nil
}

// Login authenticates and issues the bearer token for the account.
func (s *WalletAuthService) Login(ctx context.Context, sessionID string, req *dto.WalletLoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	if req == nil {
		req = &dto.WalletLoginRequest{}
	}

	account, err := s.Authenticate(ctx, sessionID, req.WalletAddress, req.Signature, ipAddress, userAgent)
	if err != nil {
		return nil, err
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(account)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.TokenResponse{
		Success:       true,
		Message:       dto.LoginSuccessMessage,
		AccessToken:   accessToken,
		TokenType:     "Bearer",
		ExpiresAt:     expiresAt,
		AccountID:     account.ID.String(),
		Username:      account.Username,
		WalletAddress: claimedOrEmpty(account.WalletAddress),
	}, nil
}

func (s *WalletAuthService) takeChallenge(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrChallengeNotFound
	}

	nonce, err := s.sessions.Take(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrChallengeNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to read challenge: %w", err)
	}
	return nonce, nil
}

func (s *WalletAuthService) reject(claimed, reason string, cause error, ipAddress, userAgent string) error {
	s.logger.Warn("wallet login rejected",
		slog.String("reason", reason),
		slog.String("wallet_address", claimed),
		slog.String("ip_address", ipAddress),
	)
	s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": "login_failed_" + reason})

	if err := s.auditService.LogFailedWalletLogin(claimed, reason, ipAddress, userAgent); err != nil {
		s.logAuditFailure(err, models.AuditActionFailedLogin)
	}
	return cause
}

func (s *WalletAuthService) logAuditFailure(err error, action string) {
	s.logger.Error("failed to create audit log",
		"error", err,
		"action", action)
}

func generateNonce() (string, error) {
	buf := make([]byte, nonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func claimedOrEmpty(address *string) string {
	if address == nil {
		return ""
	}
	return *address
}
