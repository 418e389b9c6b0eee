package models

import "github.com/shopspring/decimal"

// TokenHolding is a live ERC-20 position shown on a profile page.
type TokenHolding struct {
	ContractAddress string          `json:"contract_address"`
	RawBalance      string          `json:"raw_balance"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// ProfileView is an account profile together with its live holdings, NFTs and links.
// BalancesAvailable and NFTsAvailable are false when the matching provider could not be reached.
type ProfileView struct {
	Account           *Account
	Holdings          []TokenHolding
	BalancesAvailable bool
	NFTs              []NFT
	NFTsAvailable     bool
	SnsLinks          []SnsLink
	Addresses         []LinkedAddress
	IsOwner           bool
}

// HoldingsFromBalances converts raw balances into display holdings. Balances that cannot be decoded are skipped.
func HoldingsFromBalances(balances []TokenBalance, decimals int32) []TokenHolding {
	holdings := make([]TokenHolding, 0, len(balances))
	for _, balance := range balances {
		quantity, err := balance.Quantity(decimals)
		if err != nil {
			continue
		}
		holdings = append(holdings, TokenHolding{
			ContractAddress: balance.ContractAddress,
			RawBalance:      balance.RawBalance,
			Quantity:        quantity,
		})
	}
	return holdings
}
