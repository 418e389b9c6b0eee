package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"walletboard/internal/config"
	"walletboard/internal/models"

	"github.com/valyala/fasthttp"
)

type alchemyOwnedNFT struct {
	Contract struct {
		Address string `json:"address"`
	} `json:"contract"`
	ID struct {
		TokenID       string `json:"tokenId"`
		TokenMetadata struct {
			TokenType string `json:"tokenType"`
		} `json:"tokenMetadata"`
	} `json:"id"`
	Balance string `json:"balance"`
	Title   string `json:"title"`
	Media   []struct {
		Gateway string `json:"gateway"`
		Raw     string `json:"raw"`
	} `json:"media"`
}

type alchemyNFTsResponse struct {
	OwnedNFTs  []alchemyOwnedNFT `json:"ownedNfts"`
	TotalCount int               `json:"totalCount"`
}

// AlchemyNFTClient lists the NFTs a wallet owns through the Alchemy NFT API. Only the first
// page the provider returns is read.
type AlchemyNFTClient struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *slog.Logger
}

func NewAlchemyNFTClient(cfg *config.ChainConfig, logger *slog.Logger) NFTClientInterface {
	timeout := cfg.BalanceTimeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}

	return &AlchemyNFTClient{
		client:  &fasthttp.Client{Name: "walletboard"},
		baseURL: strings.TrimRight(cfg.NFTAPIURL, "/"),
		timeout: timeout,
		logger:  logger,
	}
}

func (c *AlchemyNFTClient) FetchNFTs(ctx context.Context, owner string) ([]models.NFT, error) {
	if !models.IsValidWalletAddress(owner) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidWalletAddress, owner)
	}
	if err := ctx.Err(); err != nil {
		return nil, &ExternalServiceError{Collaborator: "nfts", Err: err}
	}

	query := url.Values{}
	query.Set("owner", owner)
	query.Set("withMetadata", "true")

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.baseURL + "/getNFTs?" + query.Encode())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := c.client.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return nil, &ExternalServiceError{Collaborator: "nfts", Err: err}
	}

	body := resp.Body()
	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Warn("nft provider returned non-200 status",
			slog.Int("status_code", resp.StatusCode()),
		)
		return nil, &ExternalServiceError{
			Collaborator: "nfts",
			StatusCode:   resp.StatusCode(),
			Err:          fmt.Errorf("unexpected response: %s", truncate(string(body), 256)),
		}
	}

	var payload alchemyNFTsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ExternalServiceError{Collaborator: "nfts", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	nfts := make([]models.NFT, 0, len(payload.OwnedNFTs))
	for _, owned := range payload.OwnedNFTs {
		nft := models.NFT{
			ContractAddress: strings.ToLower(owned.Contract.Address),
			TokenID:         owned.ID.TokenID,
			TokenType:       owned.ID.TokenMetadata.TokenType,
			Title:           owned.Title,
			Balance:         owned.Balance,
		}
		for _, media := range owned.Media {
			if media.Gateway != "" {
				nft.ImageURL = media.Gateway
				break
			}
		}
		nfts = append(nfts, nft)
	}

	return nfts, nil
}

func (c *AlchemyNFTClient) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}
