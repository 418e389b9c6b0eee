package dto

import (
	"time"

	"walletboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile Request DTOs

// UpdateProfileRequest carries the editable profile fields; nil fields are left unchanged
type UpdateProfileRequest struct {
	Nickname   *string `json:"nickname" validate:"omitempty,nickname"`
	Bio        *string `json:"bio" validate:"omitempty,max=1000"`
	IsPublic   *bool   `json:"is_public"`
	ThemeColor *string `json:"theme_color" validate:"omitempty,theme_color"`
}

// IsEmpty reports whether the request changes nothing
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.Nickname == nil && r.Bio == nil && r.IsPublic == nil && r.ThemeColor == nil
}

// Profile Response DTOs

// ProfileResponse represents a profile page
type ProfileResponse struct {
	ID                uuid.UUID              `json:"id"`
	Username          string                 `json:"username"`
	Nickname          string                 `json:"nickname"`
	Bio               string                 `json:"bio"`
	WalletAddress     string                 `json:"wallet_address,omitempty"`
	PortfolioValue    decimal.Decimal        `json:"portfolio_value"`
	IsPublic          bool                   `json:"is_public"`
	ThemeColor        string                 `json:"theme_color"`
	IsOwner           bool                   `json:"is_owner"`
	Holdings          []models.TokenHolding  `json:"holdings"`
	BalancesAvailable bool                   `json:"balances_available"`
	NFTs              []models.NFT           `json:"nfts"`
	NFTsAvailable     bool                   `json:"nfts_available"`
	SnsLinks          []models.SnsLink       `json:"sns_links"`
	Addresses         []models.LinkedAddress `json:"addresses"`
	CreatedAt         time.Time              `json:"created_at"`
}

// AccountResponse represents the authenticated account after an update
type AccountResponse struct {
	ID             uuid.UUID       `json:"id"`
	Username       string          `json:"username"`
	Nickname       string          `json:"nickname"`
	Bio            string          `json:"bio"`
	WalletAddress  string          `json:"wallet_address,omitempty"`
	PortfolioValue decimal.Decimal `json:"portfolio_value"`
	IsPublic       bool            `json:"is_public"`
	ThemeColor     string          `json:"theme_color"`
	LastLoginAt    *time.Time      `json:"last_login_at,omitempty"`
}

// RankingEntry is one row of the portfolio ranking
type RankingEntry struct {
	Rank           int             `json:"rank"`
	Username       string          `json:"username"`
	Nickname       string          `json:"nickname"`
	PortfolioValue decimal.Decimal `json:"portfolio_value"`
	ThemeColor     string          `json:"theme_color"`
}

// RankingResponse represents one page of the ranking
type RankingResponse struct {
	Accounts   []RankingEntry `json:"accounts"`
	Pagination PaginationMeta `json:"pagination"`
}

// AuditLogsListResponse represents a paginated list of the caller's own audit entries
type AuditLogsListResponse struct {
	Logs       []*models.AuditLog `json:"logs"`
	Pagination PaginationMeta     `json:"pagination"`
}

func walletOf(account *models.Account) string {
	if account.WalletAddress == nil {
		return ""
	}
	return *account.WalletAddress
}

func NewAccountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		ID:             account.ID,
		Username:       account.Username,
		Nickname:       account.DisplayName(),
		Bio:            account.Bio,
		WalletAddress:  walletOf(account),
		PortfolioValue: account.PortfolioValue,
		IsPublic:       account.IsPublic,
		ThemeColor:     account.ThemeColor(),
		LastLoginAt:    account.LastLoginAt,
	}
}

// emptyIfNil keeps list fields rendering as [] rather than null
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func NewProfileResponse(view *models.ProfileView) ProfileResponse {
	account := view.Account
	return ProfileResponse{
		ID:                account.ID,
		Username:          account.Username,
		Nickname:          account.DisplayName(),
		Bio:               account.Bio,
		WalletAddress:     walletOf(account),
		PortfolioValue:    account.PortfolioValue,
		IsPublic:          account.IsPublic,
		ThemeColor:        account.ThemeColor(),
		IsOwner:           view.IsOwner,
		Holdings:          emptyIfNil(view.Holdings),
		BalancesAvailable: view.BalancesAvailable,
		NFTs:              emptyIfNil(view.NFTs),
		NFTsAvailable:     view.NFTsAvailable,
		SnsLinks:          emptyIfNil(view.SnsLinks),
		Addresses:         emptyIfNil(view.Addresses),
		CreatedAt:         account.CreatedAt,
	}
}

// NewRankingResponse numbers entries from the first rank of the page
func NewRankingResponse(accounts []models.Account, page, limit int, total int64) RankingResponse {
	entries := make([]RankingEntry, len(accounts))
	first := (page-1)*limit + 1
	for i := range accounts {
		entries[i] = RankingEntry{
			Rank:           first + i,
			Username:       accounts[i].Username,
			Nickname:       accounts[i].DisplayName(),
			PortfolioValue: accounts[i].PortfolioValue,
			ThemeColor:     accounts[i].ThemeColor(),
		}
	}
	return RankingResponse{
		Accounts:   entries,
		Pagination: NewPaginationMeta(page, limit, total),
	}
}
