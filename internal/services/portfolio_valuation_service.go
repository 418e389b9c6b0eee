package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"walletboard/internal/models"
	"walletboard/internal/repositories"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/shopspring/decimal"
)

const (
	ValuationJobName = "portfolio-valuation"

	portfolioValuePlaces = 2
)

var (
	ErrValuationInProgress = errors.New("portfolio valuation already running")
	ErrPersistence         = errors.New("failed to persist portfolio values")
)

type PortfolioValuationConfig struct {
	Workers        int
	BalanceTimeout time.Duration
	LockTTL        time.Duration
	TokenDecimals  int32
}

// PortfolioValuationService revalues every wallet-bound account from live balances and prices.
type PortfolioValuationService struct {
	accountRepo    repositories.AccountRepositoryInterface
	balances       BalanceClientInterface
	prices         TokenPriceServiceInterface
	lock           JobLockInterface
	circuitBreaker CircuitBreakerInterface
	auditService   AuditServiceInterface
	eventLogger    EventLoggerInterface
	metrics        MetricsRecorderInterface
	config         PortfolioValuationConfig
	logger         *slog.Logger
}

func NewPortfolioValuationService(
	accountRepo repositories.AccountRepositoryInterface,
	balances BalanceClientInterface,
	prices TokenPriceServiceInterface,
	lock JobLockInterface,
	circuitBreaker CircuitBreakerInterface,
	auditService AuditServiceInterface,
	eventLogger EventLoggerInterface,
	metrics MetricsRecorderInterface,
	config PortfolioValuationConfig,
	logger *slog.Logger,
) PortfolioValuationServiceInterface {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.TokenDecimals <= 0 {
		config.TokenDecimals = models.DefaultTokenDecimals
	}

	return &PortfolioValuationService{
		accountRepo:    accountRepo,
		balances:       balances,
		prices:         prices,
		lock:           lock,
		circuitBreaker: circuitBreaker,
		auditService:   auditService,
		eventLogger:    eventLogger,
		metrics:        metrics,
		config:         config,
		logger:         logger,
	}
}

// Run performs one valuation pass and returns the number of accounts written.
// Only a failed write is fatal; provider failures leave the affected accounts untouched.
func (s *PortfolioValuationService) Run(ctx context.Context) (int, error) {
	runID := uuid.NewString()
	ctx = WithCorrelationID(ctx, runID)
	start := time.Now()

	release, acquired, err := s.lock.Acquire(ctx, ValuationJobName, s.config.LockTTL)
	if err != nil {
		s.recordRun("lock_error", start)
		return 0, err
	}
	if !acquired {
		s.eventLogger.LogValuationSkipped(ctx, runID, "lock held by another run")
		s.recordRun("skipped", start)
		return 0, ErrValuationInProgress
	}
	defer release()

	accounts, err := s.accountRepo.ListActiveWithWallet()
	if err != nil {
		s.recordRun("failed", start)
		return 0, fmt.Errorf("failed to list accounts for valuation: %w", err)
	}
	if len(accounts) == 0 {
		s.eventLogger.LogValuationSkipped(ctx, runID, "no accounts with a wallet")
		s.recordRun("empty", start)
		return 0, nil
	}

	s.eventLogger.LogValuationStarted(ctx, runID, len(accounts))

	holdings := s.fetchBalances(ctx, runID, accounts)
	if len(holdings) == 0 {
		s.eventLogger.LogValuationSkipped(ctx, runID, "no token balances found")
		s.recordRun("empty", start)
		return 0, nil
	}

	prices := s.prices.GetTokenPrices(ctx, contractUnion(holdings))
	updates := s.valuate(accounts, holdings, prices)

	updated, err := s.accountRepo.BulkUpdatePortfolioValues(updates)
	if err != nil {
		ids := make([]uuid.UUID, len(updates))
		for i, update := range updates {
			ids[i] = update.AccountID
		}
		s.eventLogger.LogPersistenceFailed(ctx, runID, ids, err.Error())
		s.recordRun("failed", start)
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	duration := time.Since(start)
	s.metrics.RecordGauge(MetricAccountsUpdated, float64(updated), nil)
	s.recordRun("success", start)
	s.eventLogger.LogValuationCompleted(ctx, runID, int(updated), duration.Milliseconds())

	if err := s.auditService.LogValuationRun(len(accounts), int(updated), duration); err != nil {
		s.logger.Error("failed to create audit log for valuation run",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}

	return int(updated), nil
}

// fetchBalances fans balance lookups out over a bounded pool. Accounts whose lookup failed
// or returned nothing are absent from the result.
func (s *PortfolioValuationService) fetchBalances(ctx context.Context, runID string, accounts []models.Account) map[uuid.UUID][]models.TokenBalance {
	results := xsync.NewMap[uuid.UUID, []models.TokenBalance]()

	pool := pond.NewPool(s.config.Workers, pond.WithQueueSize(len(accounts)))
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	for _, account := range accounts {
		if !account.HasWallet() {
			continue
		}

		group.Submit(func() {
			if err := groupCtx.Err(); err != nil {
				return
			}

			if s.circuitBreaker.IsOpen() {
				s.metrics.IncrementCounter(MetricExternalCallFailed, map[string]string{"collaborator": "balances"})
				s.eventLogger.LogBalanceFetchFailed(groupCtx, runID, account.ID, ErrCircuitBreakerOpen.Error())
				return
			}

			callCtx := groupCtx
			if s.config.BalanceTimeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(groupCtx, s.config.BalanceTimeout)
				defer cancel()
			}

			start := time.Now()
			balances, err := s.balances.FetchTokenBalances(callCtx, *account.WalletAddress)
			s.metrics.RecordProcessingTime(MetricExternalCall+".balances", time.Since(start))
			if err != nil {
				s.circuitBreaker.RecordFailure()
				s.metrics.IncrementCounter(MetricExternalCallFailed, map[string]string{"collaborator": "balances"})
				s.eventLogger.LogBalanceFetchFailed(groupCtx, runID, account.ID, err.Error())
				return
			}
			s.circuitBreaker.RecordSuccess()

			if len(balances) > 0 {
				results.Store(account.ID, balances)
			}
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		s.logger.Warn("some balance lookups failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}

	holdings := make(map[uuid.UUID][]models.TokenBalance, results.Size())
	results.Range(func(accountID uuid.UUID, balances []models.TokenBalance) bool {
		holdings[accountID] = balances
		return true
	})
	return holdings
}

// valuate sums priced holdings per account in account order. Unpriced tokens contribute nothing.
func (s *PortfolioValuationService) valuate(accounts []models.Account, holdings map[uuid.UUID][]models.TokenBalance, prices map[string]decimal.Decimal) []models.PortfolioUpdate {
	updates := make([]models.PortfolioUpdate, 0, len(holdings))

	for _, account := range accounts {
		balances, ok := holdings[account.ID]
		if !ok {
			continue
		}

		total := decimal.Zero
		for _, balance := range balances {
			price, priced := prices[models.NormalizeWalletAddress(balance.ContractAddress)]
			if !priced {
				continue
			}

			value, err := balance.Value(price, s.config.TokenDecimals)
			if err != nil {
				s.logger.Warn("skipping undecodable balance",
					slog.String("account_id", account.ID.String()),
					slog.String("contract_address", balance.ContractAddress),
					slog.String("error", err.Error()),
				)
				continue
			}
			total = total.Add(value)
		}

		updates = append(updates, models.PortfolioUpdate{
			AccountID: account.ID,
			Value:     total.Round(portfolioValuePlaces),
		})
	}

	return updates
}

func (s *PortfolioValuationService) recordRun(status string, start time.Time) {
	s.metrics.IncrementCounter(MetricValuationRun, map[string]string{"status": status})
	s.metrics.RecordProcessingTime(MetricValuationDuration, time.Since(start))
}

// contractUnion is the sorted set of lowercased contract addresses across all holdings.
func contractUnion(holdings map[uuid.UUID][]models.TokenBalance) []string {
	addresses := make([]string, 0)
	for _, balances := range holdings {
		for _, balance := range balances {
			addresses = append(addresses, balance.ContractAddress)
		}
	}
	return normalizeAddresses(addresses)
}

// NewObservedCircuitBreaker reports every state change of the breaker guarding service.
func NewObservedCircuitBreaker(service string, config CircuitBreakerConfig, metrics MetricsRecorderInterface, eventLogger EventLoggerInterface) CircuitBreakerInterface {
	return NewCircuitBreakerWithHook(config, func(from, to CircuitBreakerState) {
		metrics.RecordGauge(MetricCircuitBreakerState, float64(to), map[string]string{"service": service})
		eventLogger.LogCircuitBreakerStateChange(context.Background(), service, from.String(), to.String())
	})
}
