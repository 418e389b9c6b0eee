package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit actions
const (
	AuditActionNonceIssued    = "nonce_issued"
	AuditActionWalletLogin    = "wallet_login"
	AuditActionFailedLogin    = "failed_wallet_login"
	AuditActionAccountCreated = "account_created"
	AuditActionProfileUpdated = "profile_updated"
	AuditActionPostCreated    = "post_created"
	AuditActionValuationRun   = "portfolio_valuation_run"
)

// Audit resources
const (
	AuditResourceAccount      = "account"
	AuditResourceSession      = "session"
	AuditResourcePost         = "post"
	AuditResourcePortfolioJob = "portfolio_job"
)

// AuditLog is one security or activity event. AccountID is nil for events no account
// can be tied to yet: issued challenges and rejected logins.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	AccountID  *uuid.UUID `gorm:"type:uuid;index" json:"account_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string     `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   JSONObject `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`

	Account *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:SET NULL" json:"-"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// Actor is the account ID as text, or "anonymous".
func (al *AuditLog) Actor() string {
	if al.AccountID == nil {
		return "anonymous"
	}
	return al.AccountID.String()
}

func (al *AuditLog) String() string {
	return fmt.Sprintf("%s %s by %s on %s/%s from %s",
		al.CreatedAt.Format(time.RFC3339), al.Action, al.Actor(), al.Resource, al.ResourceID, al.IPAddress)
}
