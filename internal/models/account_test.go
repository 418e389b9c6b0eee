package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWallet = "0x5290f1a4e2b1c3d4e5f60718293a4b5c6d7e8f90"

func stringPtr(s string) *string {
	return &s
}

func TestNewWalletAccount(t *testing.T) {
	account := NewWalletAccount("  0x5290F1A4E2B1C3D4E5F60718293A4B5C6D7E8F90 ")

	assert.Equal(t, testWallet, account.Username)
	require.NotNil(t, account.WalletAddress)
	assert.Equal(t, testWallet, *account.WalletAddress)
	require.NotNil(t, account.Nickname)
	assert.Equal(t, testWallet, *account.Nickname)
	assert.True(t, account.IsActive)
	assert.True(t, account.IsPublic)
	assert.True(t, account.PortfolioValue.IsZero())
	assert.Equal(t, ThemeDefault, account.ThemeColor())
	assert.True(t, account.HasWallet())
}

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid wallet account",
			account: *NewWalletAccount(testWallet),
		},
		{
			name:    "valid account without wallet",
			account: Account{Username: "legacy_user"},
		},
		{
			name:    "missing username",
			account: Account{WalletAddress: stringPtr(testWallet)},
			wantErr: true,
			errMsg:  "username is required",
		},
		{
			name:    "mixed case wallet is not stored form",
			account: Account{Username: "u", WalletAddress: stringPtr("0x5290F1a4e2b1c3d4e5f60718293a4b5c6d7e8f90")},
			wantErr: true,
			errMsg:  "invalid wallet address",
		},
		{
			name:    "short wallet",
			account: Account{Username: "u", WalletAddress: stringPtr("0x1234")},
			wantErr: true,
			errMsg:  "invalid wallet address",
		},
		{
			name:    "nickname too long",
			account: Account{Username: "u", Nickname: stringPtr(strings.Repeat("n", MaxNicknameLength+1))},
			wantErr: true,
			errMsg:  "nickname must be at most 50 characters",
		},
		{
			name:    "negative portfolio value",
			account: Account{Username: "u", PortfolioValue: decimal.NewFromInt(-1)},
			wantErr: true,
			errMsg:  "portfolio value cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAccount_BeforeCreate(t *testing.T) {
	t.Run("fills id and timestamps and clears an empty nickname", func(t *testing.T) {
		account := &Account{Username: "user_1", Nickname: stringPtr("")}
		require.NoError(t, account.BeforeCreate(nil))

		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.False(t, account.CreatedAt.IsZero())
		assert.False(t, account.UpdatedAt.IsZero())
		assert.Nil(t, account.Nickname)
		assert.Equal(t, "user_1", account.DisplayName())
	})

	t.Run("keeps an explicit id", func(t *testing.T) {
		id := uuid.New()
		account := &Account{ID: id, Username: "user_2"}
		require.NoError(t, account.BeforeCreate(nil))
		assert.Equal(t, id, account.ID)
	})

	t.Run("rejects invalid accounts", func(t *testing.T) {
		account := &Account{Username: "user_3", WalletAddress: stringPtr("not-a-wallet")}
		err := account.BeforeCreate(nil)
		assert.ErrorIs(t, err, ErrInvalidWalletAddress)
	})
}

func TestAccount_DisplayName(t *testing.T) {
	assert.Equal(t, "alice", (&Account{Username: "u", Nickname: stringPtr("alice")}).DisplayName())
	assert.Equal(t, "u", (&Account{Username: "u", Nickname: stringPtr("")}).DisplayName())
	assert.Equal(t, "u", (&Account{Username: "u"}).DisplayName())
}

func TestAccount_ThemeColor(t *testing.T) {
	account := &Account{Username: "u"}
	assert.Equal(t, ThemeDefault, account.ThemeColor())

	account.SetThemeColor(ThemeForest)
	assert.Equal(t, ThemeForest, account.ThemeColor())

	account.Theme = JSONObject{"color": 7}
	assert.Equal(t, ThemeDefault, account.ThemeColor())
}

func TestAccount_HasWallet(t *testing.T) {
	assert.False(t, (&Account{}).HasWallet())
	assert.False(t, (&Account{WalletAddress: stringPtr("")}).HasWallet())
	assert.True(t, (&Account{WalletAddress: stringPtr(testWallet)}).HasWallet())
}

func TestWalletAddressHelpers(t *testing.T) {
	assert.Equal(t, testWallet, NormalizeWalletAddress(" 0x5290F1A4E2B1C3D4E5F60718293A4B5C6D7E8F90\n"))

	assert.True(t, IsValidWalletAddress(testWallet))
	assert.False(t, IsValidWalletAddress(strings.ToUpper(testWallet)))
	assert.False(t, IsValidWalletAddress("5290f1a4e2b1c3d4e5f60718293a4b5c6d7e8f90"))
	assert.False(t, IsValidWalletAddress(testWallet+"00"))
	assert.False(t, IsValidWalletAddress("0xzz90f1a4e2b1c3d4e5f60718293a4b5c6d7e8f90"))
	assert.Len(t, testWallet, WalletAddressLength)
}
