package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"walletboard/internal/config"
	"walletboard/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

const (
	alchemyTokenBalancesMethod = "alchemy_getTokenBalances"
	alchemyERC20Selector       = "erc20"
)

type alchemyTokenBalance struct {
	ContractAddress string  `json:"contractAddress"`
	TokenBalance    *string `json:"tokenBalance"`
	Error           *string `json:"error"`
}

type alchemyTokenBalancesResult struct {
	Address       string                `json:"address"`
	TokenBalances []alchemyTokenBalance `json:"tokenBalances"`
}

// AlchemyBalanceClient lists ERC-20 balances through the Alchemy token API.
type AlchemyBalanceClient struct {
	client  *rpc.Client
	timeout time.Duration
}

func NewAlchemyBalanceClient(ctx context.Context, cfg *config.ChainConfig) (BalanceClientInterface, error) {
	client, err := rpc.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial balance provider: %w", err)
	}

	return NewAlchemyBalanceClientWithRPC(client, cfg.BalanceTimeout), nil
}

func NewAlchemyBalanceClientWithRPC(client *rpc.Client, timeout time.Duration) BalanceClientInterface {
	return &AlchemyBalanceClient{
		client:  client,
		timeout: timeout,
	}
}

// FetchTokenBalances returns the non-zero ERC-20 balances held by walletAddress.
// Entries the provider reports with a per-token error are dropped.
func (c *AlchemyBalanceClient) FetchTokenBalances(ctx context.Context, walletAddress string) ([]models.TokenBalance, error) {
	if !common.IsHexAddress(walletAddress) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidWalletAddress, walletAddress)
	}

	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var result alchemyTokenBalancesResult
	if err := c.client.CallContext(callCtx, &result, alchemyTokenBalancesMethod, walletAddress, alchemyERC20Selector); err != nil {
		return nil, &ExternalServiceError{Collaborator: "balances", Err: err}
	}

	balances := make([]models.TokenBalance, 0, len(result.TokenBalances))
	for _, entry := range result.TokenBalances {
		if entry.Error != nil || entry.TokenBalance == nil {
			continue
		}

		balance := models.TokenBalance{
			ContractAddress: strings.ToLower(entry.ContractAddress),
			RawBalance:      *entry.TokenBalance,
		}
		if balance.IsZero() {
			continue
		}
		balances = append(balances, balance)
	}

	return balances, nil
}
