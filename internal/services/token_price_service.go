package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TokenPriceService resolves USD prices from the cache first and the price provider second.
type TokenPriceService struct {
	cache       PriceCacheInterface
	client      PriceClientInterface
	metrics     MetricsRecorderInterface
	eventLogger EventLoggerInterface
	cacheTTL    time.Duration
	logger      *slog.Logger
}

func NewTokenPriceService(
	cache PriceCacheInterface,
	client PriceClientInterface,
	metrics MetricsRecorderInterface,
	eventLogger EventLoggerInterface,
	cacheTTL time.Duration,
	logger *slog.Logger,
) TokenPriceServiceInterface {
	return &TokenPriceService{
		cache:       cache,
		client:      client,
		metrics:     metrics,
		eventLogger: eventLogger,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// GetTokenPrices never fails: provider and cache errors shrink the result instead.
// Keys are lowercased contract addresses; unknown tokens are absent.
func (s *TokenPriceService) GetTokenPrices(ctx context.Context, addresses []string) map[string]decimal.Decimal {
	wanted := normalizeAddresses(addresses)
	prices := make(map[string]decimal.Decimal, len(wanted))
	if len(wanted) == 0 {
		return prices
	}

	cached, err := s.cache.GetMany(ctx, wanted)
	if err != nil {
		s.logger.Warn("price cache read failed",
			slog.String("error", err.Error()),
		)
	}
	for address, price := range cached {
		prices[address] = price
	}

	missing := make([]string, 0, len(wanted)-len(prices))
	for _, address := range wanted {
		if _, ok := prices[address]; !ok {
			missing = append(missing, address)
		}
	}

	if len(missing) == 0 {
		s.metrics.IncrementCounter(MetricPriceCacheLookup, map[string]string{"result": "hit"})
		return prices
	}
	s.metrics.IncrementCounter(MetricPriceCacheLookup, map[string]string{"result": "miss"})

	s.logger.Info("fetching token prices from provider",
		slog.Int("missing", len(missing)),
		slog.Int("cached", len(prices)),
	)

	start := time.Now()
	fetched, err := s.client.FetchTokenPrices(ctx, missing)
	s.metrics.RecordProcessingTime(MetricExternalCall+".prices", time.Since(start))
	if err != nil {
		s.metrics.IncrementCounter(MetricExternalCallFailed, map[string]string{"collaborator": "prices"})
		s.eventLogger.LogPriceFetchFailed(ctx, len(missing), err.Error())
	}

	fresh := make(map[string]decimal.Decimal, len(fetched))
	for address, price := range fetched {
		address = strings.ToLower(address)
		fresh[address] = price
		prices[address] = price
	}

	if len(fresh) > 0 {
		if err := s.cache.SetMany(ctx, fresh, s.cacheTTL); err != nil {
			s.logger.Warn("price cache write failed",
				slog.Int("prices", len(fresh)),
				slog.String("error", err.Error()),
			)
		}
	}

	return prices
}

// normalizeAddresses lowercases, dedupes and sorts contract addresses.
func normalizeAddresses(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	normalized := make([]string, 0, len(addresses))
	for _, address := range addresses {
		address = strings.ToLower(strings.TrimSpace(address))
		if address == "" {
			continue
		}
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		normalized = append(normalized, address)
	}
	sort.Strings(normalized)
	return normalized
}
