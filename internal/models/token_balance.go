package models

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultTokenDecimals is the fixed-point scale assumed for every ERC-20 balance.
const DefaultTokenDecimals int32 = 18

// TokenBalance is a raw on-chain balance for one contract. It is never persisted.
type TokenBalance struct {
	ContractAddress string `json:"contractAddress"`
	RawBalance      string `json:"tokenBalance"`
}

// ParseRawBalance decodes a hex integer with or without the 0x prefix. Leading zeros are allowed.
func ParseRawBalance(raw string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(raw), "0x"), "0X")
	if digits == "" {
		return nil, fmt.Errorf("empty balance %q", raw)
	}

	value, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex balance %q", raw)
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("negative balance %q", raw)
	}
	return value, nil
}

// IsZero reports whether the raw balance decodes to zero. Undecodable balances count as zero.
func (b TokenBalance) IsZero() bool {
	value, err := ParseRawBalance(b.RawBalance)
	return err != nil || value.Sign() == 0
}

// Quantity scales the raw integer balance down by decimals.
func (b TokenBalance) Quantity(decimals int32) (decimal.Decimal, error) {
	value, err := ParseRawBalance(b.RawBalance)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(value, -decimals), nil
}

// Value is quantity times the USD price.
func (b TokenBalance) Value(price decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	quantity, err := b.Quantity(decimals)
	if err != nil {
		return decimal.Zero, err
	}
	return quantity.Mul(price), nil
}
