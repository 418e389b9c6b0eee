package models

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SnsPlatformTwitter = "twitter"
	SnsPlatformGitHub  = "github"
	SnsPlatformWebsite = "website"
	SnsPlatformOther   = "other"

	CurrencyETH   = "eth"
	CurrencyBTC   = "btc"
	CurrencySOL   = "sol"
	CurrencyOther = "other"

	MaxSnsURLLength        = 200
	MaxLinkedAddressLength = 255
)

var (
	SnsPlatforms   = []string{SnsPlatformTwitter, SnsPlatformGitHub, SnsPlatformWebsite, SnsPlatformOther}
	CurrencyTypes  = []string{CurrencyETH, CurrencyBTC, CurrencySOL, CurrencyOther}
	ErrInvalidLink = errors.New("invalid profile link")
)

// SnsLink is a social profile shown on an account page. One per platform.
type SnsLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sns_links_account_platform" json:"-"`
	Platform  string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_sns_links_account_platform" json:"platform"`
	URL       string    `gorm:"type:varchar(200);not null" json:"url"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Account *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

func (l *SnsLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	return l.Validate()
}

func (l *SnsLink) Validate() error {
	if l.AccountID == uuid.Nil {
		return fmt.Errorf("%w: account is required", ErrInvalidLink)
	}
	if !slices.Contains(SnsPlatforms, l.Platform) {
		return fmt.Errorf("%w: unknown platform %q", ErrInvalidLink, l.Platform)
	}
	if l.URL == "" || len(l.URL) > MaxSnsURLLength {
		return fmt.Errorf("%w: url must be 1 to %d characters", ErrInvalidLink, MaxSnsURLLength)
	}
	return nil
}

func (l *SnsLink) TableName() string {
	return "sns_links"
}

// LinkedAddress is an extra address on any chain that an account lists on its profile.
// Only the wallet the account signs in with is verified by signature.
type LinkedAddress struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AccountID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_addresses_account_address" json:"-"`
	Address      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_addresses_account_address" json:"address"`
	CurrencyType string    `gorm:"type:varchar(10);not null" json:"currency_type"`
	IsPublic     bool      `gorm:"not null" json:"is_public"`
	IsVerified   bool      `gorm:"not null" json:"is_verified"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`

	Account *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

func (a *LinkedAddress) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return a.Validate()
}

func (a *LinkedAddress) Validate() error {
	if a.AccountID == uuid.Nil {
		return fmt.Errorf("%w: account is required", ErrInvalidLink)
	}
	if a.Address == "" || len(a.Address) > MaxLinkedAddressLength {
		return fmt.Errorf("%w: address must be 1 to %d characters", ErrInvalidLink, MaxLinkedAddressLength)
	}
	if !slices.Contains(CurrencyTypes, a.CurrencyType) {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalidLink, a.CurrencyType)
	}
	return nil
}

func (a *LinkedAddress) TableName() string {
	return "addresses"
}
