package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ThemeDefault = "default"
	ThemeCrimson = "crimson"
	ThemeOcean   = "ocean"
	ThemeForest  = "forest"

	WalletAddressLength = 42
	MaxNicknameLength   = 50
)

var (
	walletAddressRegex = regexp.MustCompile(`^0x[0-9a-f]{40}$`)

	ErrInvalidWalletAddress = errors.New("invalid wallet address")
)

// ThemeChoices lists the profile colour themes a user may pick.
var ThemeChoices = []string{ThemeDefault, ThemeCrimson, ThemeOcean, ThemeForest}

type Account struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Username       string          `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email          string          `gorm:"type:varchar(255)" json:"email,omitempty"`
	Nickname       *string         `gorm:"type:varchar(50);uniqueIndex" json:"nickname,omitempty"`
	Bio            string          `gorm:"type:text" json:"bio"`
	WalletAddress  *string         `gorm:"type:varchar(42);uniqueIndex" json:"wallet_address,omitempty"`
	PortfolioValue decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"portfolio_value"`
	IsActive       bool            `gorm:"not null;default:true" json:"is_active"`
	IsPublic       bool            `gorm:"not null;default:true" json:"is_public"`
	Theme          JSONObject      `gorm:"type:text" json:"theme,omitempty"`
	LastLoginAt    *time.Time      `gorm:"index" json:"last_login_at,omitempty"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// NewWalletAccount builds the account bound on first wallet login. The address
// doubles as the username and the default nickname.
func NewWalletAccount(walletAddress string) *Account {
	address := NormalizeWalletAddress(walletAddress)
	return &Account{
		Username:       address,
		Nickname:       &address,
		WalletAddress:  &address,
		PortfolioValue: decimal.Zero,
		IsActive:       true,
		IsPublic:       true,
		Theme:          JSONObject{"color": ThemeDefault},
	}
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	// an empty nickname would take the unique slot; DisplayName falls back to the username
	if a.Nickname != nil && *a.Nickname == "" {
		a.Nickname = nil
	}

	return a.Validate()
}

func (a *Account) Validate() error {
	if a.Username == "" {
		return errors.New("username is required")
	}

	if a.WalletAddress != nil && !IsValidWalletAddress(*a.WalletAddress) {
		return fmt.Errorf("%w: %s", ErrInvalidWalletAddress, *a.WalletAddress)
	}

	if a.Nickname != nil && len(*a.Nickname) > MaxNicknameLength {
		return fmt.Errorf("nickname must be at most %d characters", MaxNicknameLength)
	}

	if a.PortfolioValue.IsNegative() {
		return errors.New("portfolio value cannot be negative")
	}

	return nil
}

func (a *Account) HasWallet() bool {
	return a.WalletAddress != nil && *a.WalletAddress != ""
}

func (a *Account) DisplayName() string {
	if a.Nickname != nil && *a.Nickname != "" {
		return *a.Nickname
	}
	return a.Username
}

func (a *Account) ThemeColor() string {
	if color := a.Theme.String("color"); color != "" {
		return color
	}
	return ThemeDefault
}

func (a *Account) SetThemeColor(color string) {
	a.Theme = JSONObject{"color": color}
}

func (a *Account) TableName() string {
	return "accounts"
}

// NormalizeWalletAddress lowercases and trims an address; case carries no meaning for lookups.
func NormalizeWalletAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func IsValidWalletAddress(address string) bool {
	return walletAddressRegex.MatchString(address)
}

// PortfolioUpdate is one row of a bulk portfolio value write.
type PortfolioUpdate struct {
	AccountID uuid.UUID
	Value     decimal.Decimal
}
