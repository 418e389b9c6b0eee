package services

import (
	"errors"
	"fmt"
	"time"

	"walletboard/internal/models"
	"walletboard/internal/repositories"

	"github.com/google/uuid"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

const auditPurgeBatchSize = 1000

var (
	ErrInvalidAccountID = errors.New("invalid account ID")
	ErrInvalidAuditLog  = errors.New("invalid audit log")
	ErrInvalidRetention = errors.New("retention must be positive")
)

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	validActions := map[string]bool{
		models.AuditActionNonceIssued:    true,
		models.AuditActionWalletLogin:    true,
		models.AuditActionFailedLogin:    true,
		models.AuditActionAccountCreated: true,
		models.AuditActionProfileUpdated: true,
		models.AuditActionPostCreated:    true,
		models.AuditActionValuationRun:   true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetAccountActivity retrieves the audit trail of one account with pagination
func (s *AuditService) GetAccountActivity(accountID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if accountID == uuid.Nil {
		return nil, 0, ErrInvalidAccountID
	}

	return s.repo.ListByAccount(accountID, offset, limit)
}

// LogNonceIssued records a challenge handed to an anonymous session
func (s *AuditService) LogNonceIssued(sessionID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		Action:     models.AuditActionNonceIssued,
		Resource:   models.AuditResourceSession,
		ResourceID: sessionID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	return s.CreateAuditLog(log)
}

// LogWalletLogin logs a successful wallet login
func (s *AuditService) LogWalletLogin(accountID uuid.UUID, walletAddress, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		AccountID:  &accountID,
		Action:     models.AuditActionWalletLogin,
		Resource:   models.AuditResourceAccount,
		ResourceID: accountID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: models.JSONObject{
			"wallet_address": walletAddress,
		},
	}
	return s.CreateAuditLog(log)
}

// LogFailedWalletLogin logs a rejected wallet login. The claimed address is untrusted input.
func (s *AuditService) LogFailedWalletLogin(claimedAddress, reason, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		Action:     models.AuditActionFailedLogin,
		Resource:   models.AuditResourceSession,
		ResourceID: truncate(claimedAddress, 255),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: models.JSONObject{
			"reason": reason,
		},
	}
	return s.CreateAuditLog(log)
}

// LogAccountCreated logs the account bound on a first wallet login
func (s *AuditService) LogAccountCreated(accountID uuid.UUID, walletAddress, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		AccountID:  &accountID,
		Action:     models.AuditActionAccountCreated,
		Resource:   models.AuditResourceAccount,
		ResourceID: accountID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: models.JSONObject{
			"wallet_address": walletAddress,
		},
	}
	return s.CreateAuditLog(log)
}

// LogProfileUpdated logs a profile update event
func (s *AuditService) LogProfileUpdated(accountID uuid.UUID, ipAddress, userAgent string, changes map[string]interface{}) error {
	log := &models.AuditLog{
		AccountID:  &accountID,
		Action:     models.AuditActionProfileUpdated,
		Resource:   models.AuditResourceAccount,
		ResourceID: accountID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   changes,
	}
	return s.CreateAuditLog(log)
}

func (s *AuditService) LogPostCreated(accountID, postID uuid.UUID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		AccountID:  &accountID,
		Action:     models.AuditActionPostCreated,
		Resource:   models.AuditResourcePost,
		ResourceID: postID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	return s.CreateAuditLog(log)
}

// LogValuationRun records a completed portfolio valuation pass
func (s *AuditService) LogValuationRun(accountsSeen, accountsUpdated int, duration time.Duration) error {
	log := &models.AuditLog{
		Action:   models.AuditActionValuationRun,
		Resource: models.AuditResourcePortfolioJob,
		Metadata: models.JSONObject{
			"accounts_seen":    accountsSeen,
			"accounts_updated": accountsUpdated,
			"duration_ms":      duration.Milliseconds(),
		},
	}
	return s.CreateAuditLog(log)
}

// PurgeOlderThan deletes audit entries past the retention window
func (s *AuditService) PurgeOlderThan(retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrInvalidRetention
	}

	deleted, err := s.repo.DeleteBefore(time.Now().Add(-retention), auditPurgeBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit logs: %w", err)
	}
	return deleted, nil
}
