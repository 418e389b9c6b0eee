package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"walletboard/internal/services"
	"walletboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	tokenA = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
	tokenB = "0x6b175474e89094c44da98b954eedeac495271d0f"
)

type TokenPriceServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	cache       services.PriceCacheInterface
	client      *service_mocks.MockPriceClientInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	eventLogger *service_mocks.MockEventLoggerInterface
	service     services.TokenPriceServiceInterface
}

func TestTokenPriceServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenPriceServiceTestSuite))
}

func (s *TokenPriceServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.cache = services.NewMemoryPriceCache(10*time.Minute, time.Minute)
	s.client = service_mocks.NewMockPriceClientInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.eventLogger = service_mocks.NewMockEventLoggerInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	s.service = services.NewTokenPriceService(
		s.cache,
		s.client,
		s.metrics,
		s.eventLogger,
		10*time.Minute,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *TokenPriceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TokenPriceServiceTestSuite) TestSecondLookupWithinTTLHitsCache() {
	s.client.EXPECT().
		FetchTokenPrices(gomock.Any(), []string{tokenA}).
		Return(map[string]decimal.Decimal{tokenA: decimal.RequireFromString("2.00")}, nil).
		Times(1)

	first := s.service.GetTokenPrices(s.ctx, []string{tokenA})
	second := s.service.GetTokenPrices(s.ctx, []string{tokenA})

	s.True(decimal.RequireFromString("2.00").Equal(first[tokenA]))
	s.True(decimal.RequireFromString("2.00").Equal(second[tokenA]))
}

func (s *TokenPriceServiceTestSuite) TestOnlyMissesAreFetched() {
	s.Require().NoError(s.cache.Set(s.ctx, tokenA, decimal.NewFromInt(3), time.Minute))

	s.client.EXPECT().
		FetchTokenPrices(gomock.Any(), []string{tokenB}).
		Return(map[string]decimal.Decimal{tokenB: decimal.NewFromInt(1)}, nil).
		Times(1)

	prices := s.service.GetTokenPrices(s.ctx, []string{tokenB, tokenA})
	s.Len(prices, 2)
	s.True(decimal.NewFromInt(3).Equal(prices[tokenA]))
	s.True(decimal.NewFromInt(1).Equal(prices[tokenB]))

	_, cached, err := s.cache.Get(s.ctx, tokenB)
	s.NoError(err)
	s.True(cached)
}

func (s *TokenPriceServiceTestSuite) TestInputIsNormalized() {
	s.client.EXPECT().
		FetchTokenPrices(gomock.Any(), []string{tokenB, tokenA}).
		Return(map[string]decimal.Decimal{}, nil).
		Times(1)

	prices := s.service.GetTokenPrices(s.ctx, []string{
		"0xA0B86991C6218B36C1D19D4A2E9EB0CE3606EB48",
		tokenA,
		" " + tokenB,
		"",
	})
	s.Empty(prices)
}

func (s *TokenPriceServiceTestSuite) TestProviderFailureReturnsCachedSubset() {
	s.Require().NoError(s.cache.Set(s.ctx, tokenA, decimal.NewFromInt(3), time.Minute))

	s.client.EXPECT().
		FetchTokenPrices(gomock.Any(), []string{tokenB}).
		Return(nil, errors.New("provider down")).
		Times(1)
	s.eventLogger.EXPECT().
		LogPriceFetchFailed(gomock.Any(), 1, "provider down").
		Times(1)

	prices := s.service.GetTokenPrices(s.ctx, []string{tokenA, tokenB})
	s.Len(prices, 1)
	s.Contains(prices, tokenA)
}

func (s *TokenPriceServiceTestSuite) TestPartialProviderResultIsCached() {
	s.client.EXPECT().
		FetchTokenPrices(gomock.Any(), []string{tokenB, tokenA}).
		Return(map[string]decimal.Decimal{tokenB: decimal.NewFromInt(1)}, errors.New("second batch failed")).
		Times(1)
	s.eventLogger.EXPECT().LogPriceFetchFailed(gomock.Any(), 2, gomock.Any()).Times(1)

	prices := s.service.GetTokenPrices(s.ctx, []string{tokenA, tokenB})
	s.Len(prices, 1)

	_, cached, err := s.cache.Get(s.ctx, tokenB)
	s.NoError(err)
	s.True(cached)
}

func (s *TokenPriceServiceTestSuite) TestEmptyInput() {
	prices := s.service.GetTokenPrices(s.ctx, nil)
	s.Empty(prices)
}
