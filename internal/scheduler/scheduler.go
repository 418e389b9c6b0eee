package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"walletboard/internal/services"

	"github.com/robfig/cron/v3"
)

type Config struct {
	ValuationSpec  string
	RunTimeout     time.Duration
	AuditPurgeSpec string
	AuditRetention time.Duration
}

// Scheduler drives the periodic jobs: portfolio valuation and audit log retention.
type Scheduler struct {
	cron         *cron.Cron
	valuation    services.PortfolioValuationServiceInterface
	auditService services.AuditServiceInterface
	config       Config
	logger       *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func New(
	valuation services.PortfolioValuationServiceInterface,
	auditService services.AuditServiceInterface,
	config Config,
	logger *slog.Logger,
) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	cronLogger := &slogCronLogger{logger: logger}

	s := &Scheduler{
		cron:         cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cronLogger)), cron.WithLogger(cronLogger)),
		valuation:    valuation,
		auditService: auditService,
		config:       config,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}

	if _, err := s.cron.AddFunc(config.ValuationSpec, s.valuationTick); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid valuation schedule %q: %w", config.ValuationSpec, err)
	}

	if config.AuditPurgeSpec != "" && config.AuditRetention > 0 {
		if _, err := s.cron.AddFunc(config.AuditPurgeSpec, s.purgeAuditLogs); err != nil {
			cancel()
			return nil, fmt.Errorf("invalid audit purge schedule %q: %w", config.AuditPurgeSpec, err)
		}
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started",
		slog.String("valuation_spec", s.config.ValuationSpec),
		slog.String("audit_purge_spec", s.config.AuditPurgeSpec),
	)
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// RunNow performs one valuation pass outside the schedule, bounded by the run timeout.
func (s *Scheduler) RunNow(ctx context.Context) (int, error) {
	if s.config.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RunTimeout)
		defer cancel()
	}

	start := time.Now()
	updated, err := s.valuation.Run(ctx)
	if err != nil {
		if errors.Is(err, services.ErrValuationInProgress) {
			s.logger.Info("portfolio valuation skipped, another run holds the lock")
			return 0, err
		}
		s.logger.Error("portfolio valuation failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)),
		)
		return 0, err
	}

	s.logger.Info("portfolio valuation finished",
		slog.Int("accounts_updated", updated),
		slog.Duration("elapsed", time.Since(start)),
	)
	return updated, nil
}

func (s *Scheduler) valuationTick() {
	_, _ = s.RunNow(s.ctx)
}

func (s *Scheduler) purgeAuditLogs() {
	deleted, err := s.auditService.PurgeOlderThan(s.config.AuditRetention)
	if err != nil {
		s.logger.Error("audit log purge failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("audit logs purged",
		slog.Int64("deleted", deleted),
		slog.Duration("retention", s.config.AuditRetention),
	)
}

// slogCronLogger satisfies cron.Logger on top of slog.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
