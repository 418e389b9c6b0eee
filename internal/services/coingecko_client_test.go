package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"walletboard/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CoinGeckoClientTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func TestCoinGeckoClientSuite(t *testing.T) {
	suite.Run(t, new(CoinGeckoClientTestSuite))
}

func (s *CoinGeckoClientTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *CoinGeckoClientTestSuite) newClient(baseURL string, maxTokens int) PriceClientInterface {
	return NewCoinGeckoClient(&config.PricingConfig{
		BaseURL:             baseURL,
		APIKey:              "demo-key",
		Platform:            "ethereum",
		Timeout:             2 * time.Second,
		MaxTokensPerRequest: maxTokens,
	}, s.logger)
}

func (s *CoinGeckoClientTestSuite) TestFetchTokenPrices() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/simple/token_price/ethereum", r.URL.Path)
		s.Equal("usd", r.URL.Query().Get("vs_currencies"))
		s.Equal(usdcAddress+","+daiAddress, r.URL.Query().Get("contract_addresses"))
		s.Equal("demo-key", r.Header.Get("x-cg-demo-api-key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"0xA0B86991C6218B36C1D19D4A2E9EB0CE3606EB48": {"usd": 0.9998},
			"0x6b175474e89094c44da98b954eedeac495271d0f": {"usd": 1.0001}
		}`)
	}))
	defer server.Close()

	prices, err := s.newClient(server.URL, 100).FetchTokenPrices(context.Background(), []string{usdcAddress, daiAddress})
	s.Require().NoError(err)
	s.Len(prices, 2)
	s.True(decimal.RequireFromString("0.9998").Equal(prices[usdcAddress]))
	s.True(decimal.RequireFromString("1.0001").Equal(prices[daiAddress]))
}

func (s *CoinGeckoClientTestSuite) TestUnknownAndNullPricesAreAbsent() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"`+usdcAddress+`": {"usd": null}, "`+daiAddress+`": {}}`)
	}))
	defer server.Close()

	prices, err := s.newClient(server.URL, 100).FetchTokenPrices(context.Background(), []string{usdcAddress, daiAddress})
	s.NoError(err)
	s.Empty(prices)
}

func (s *CoinGeckoClientTestSuite) TestBatchesRequests() {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		addresses := strings.Split(r.URL.Query().Get("contract_addresses"), ",")
		s.LessOrEqual(len(addresses), 1)
		_, _ = io.WriteString(w, `{"`+addresses[0]+`": {"usd": 2}}`)
	}))
	defer server.Close()

	prices, err := s.newClient(server.URL, 1).FetchTokenPrices(context.Background(), []string{usdcAddress, daiAddress})
	s.NoError(err)
	s.Len(prices, 2)
	s.Equal(int32(2), atomic.LoadInt32(&calls))
}

func (s *CoinGeckoClientTestSuite) TestNonOKStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"status":{"error_code":429}}`)
	}))
	defer server.Close()

	prices, err := s.newClient(server.URL, 100).FetchTokenPrices(context.Background(), []string{usdcAddress})
	s.Require().Error(err)
	s.Empty(prices)

	var extErr *ExternalServiceError
	s.Require().ErrorAs(err, &extErr)
	s.Equal("prices", extErr.Collaborator)
	s.Equal(http.StatusTooManyRequests, extErr.StatusCode)
}

func (s *CoinGeckoClientTestSuite) TestMalformedBody() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	}))
	defer server.Close()

	_, err := s.newClient(server.URL, 100).FetchTokenPrices(context.Background(), []string{usdcAddress})
	var extErr *ExternalServiceError
	s.ErrorAs(err, &extErr)
}

func (s *CoinGeckoClientTestSuite) TestTimeout() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = io.WriteString(w, `{}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.newClient(server.URL, 100).FetchTokenPrices(ctx, []string{usdcAddress})
	s.Error(err)
}

func (s *CoinGeckoClientTestSuite) TestEmptyInputSkipsRequest() {
	prices, err := s.newClient("http://127.0.0.1:1", 100).FetchTokenPrices(context.Background(), nil)
	s.NoError(err)
	s.Empty(prices)
}
