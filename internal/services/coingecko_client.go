package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"walletboard/internal/config"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	coinGeckoQuoteCurrency = "usd"
	coinGeckoAPIKeyHeader  = "x-cg-demo-api-key"

	defaultProviderTimeout = 8 * time.Second
)

// ExternalServiceError wraps a failure of an outbound data provider.
type ExternalServiceError struct {
	Collaborator string
	StatusCode   int
	Err          error
}

func (e *ExternalServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed with status %d: %v", e.Collaborator, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Collaborator, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// CoinGeckoClient prices ERC-20 contracts through the simple/token_price endpoint.
type CoinGeckoClient struct {
	client              *fasthttp.Client
	baseURL             string
	apiKey              string
	platform            string
	timeout             time.Duration
	maxTokensPerRequest int
	logger              *slog.Logger
}

func NewCoinGeckoClient(cfg *config.PricingConfig, logger *slog.Logger) PriceClientInterface {
	maxTokens := cfg.MaxTokensPerRequest
	if maxTokens <= 0 {
		maxTokens = 100
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}

	return &CoinGeckoClient{
		client:              &fasthttp.Client{Name: "walletboard"},
		baseURL:             strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:              cfg.APIKey,
		platform:            cfg.Platform,
		timeout:             timeout,
		maxTokensPerRequest: maxTokens,
		logger:              logger,
	}
}

// FetchTokenPrices returns USD prices keyed by lowercased contract address. Contracts the
// provider does not know are absent. On error the prices of the batches already fetched
// are returned alongside it.
func (c *CoinGeckoClient) FetchTokenPrices(ctx context.Context, addresses []string) (map[string]decimal.Decimal, error) {
	prices := make(map[string]decimal.Decimal, len(addresses))
	if len(addresses) == 0 {
		return prices, nil
	}

	for start := 0; start < len(addresses); start += c.maxTokensPerRequest {
		end := start + c.maxTokensPerRequest
		if end > len(addresses) {
			end = len(addresses)
		}

		batch, err := c.fetchBatch(ctx, addresses[start:end])
		if err != nil {
			return prices, err
		}
		for address, price := range batch {
			prices[address] = price
		}
	}

	return prices, nil
}

func (c *CoinGeckoClient) fetchBatch(ctx context.Context, addresses []string) (map[string]decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ExternalServiceError{Collaborator: "prices", Err: err}
	}

	query := url.Values{}
	query.Set("contract_addresses", strings.Join(addresses, ","))
	query.Set("vs_currencies", coinGeckoQuoteCurrency)
	requestURL := fmt.Sprintf("%s/simple/token_price/%s?%s", c.baseURL, c.platform, query.Encode())

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(coinGeckoAPIKeyHeader, c.apiKey)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := c.client.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return nil, &ExternalServiceError{Collaborator: "prices", Err: err}
	}

	body := resp.Body()
	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Warn("price provider returned non-200 status",
			slog.Int("status_code", resp.StatusCode()),
			slog.Int("tokens", len(addresses)),
		)
		return nil, &ExternalServiceError{
			Collaborator: "prices",
			StatusCode:   resp.StatusCode(),
			Err:          fmt.Errorf("unexpected response: %s", truncate(string(body), 256)),
		}
	}

	var payload map[string]map[string]decimal.NullDecimal
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ExternalServiceError{Collaborator: "prices", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	prices := make(map[string]decimal.Decimal, len(payload))
	for address, quotes := range payload {
		quote, ok := quotes[coinGeckoQuoteCurrency]
		if !ok || !quote.Valid {
			continue
		}
		prices[strings.ToLower(address)] = quote.Decimal
	}

	return prices, nil
}

// deadline is the earlier of the context deadline and the configured timeout.
func (c *CoinGeckoClient) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
