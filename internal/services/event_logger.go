package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type EventLogger struct {
	logger *slog.Logger
}

func NewEventLogger(logger *slog.Logger) EventLoggerInterface {
	return &EventLogger{
		logger: logger,
	}
}

func (el *EventLogger) LogValuationStarted(ctx context.Context, runID string, accounts int) {
	el.logger.InfoContext(ctx, "portfolio valuation started",
		slog.String("event_type", "valuation_started"),
		slog.String("run_id", runID),
		slog.Int("accounts", accounts),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (el *EventLogger) LogValuationCompleted(ctx context.Context, runID string, updated int, durationMs int64) {
	el.logger.InfoContext(ctx, "portfolio valuation completed",
		slog.String("event_type", "valuation_completed"),
		slog.String("run_id", runID),
		slog.Int("updated", updated),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (el *EventLogger) LogValuationSkipped(ctx context.Context, runID string, reason string) {
	el.logger.InfoContext(ctx, "portfolio valuation skipped",
		slog.String("event_type", "valuation_skipped"),
		slog.String("run_id", runID),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (el *EventLogger) LogBalanceFetchFailed(ctx context.Context, runID string, accountID uuid.UUID, errorMsg string) {
	el.logger.WarnContext(ctx, "balance fetch failed",
		slog.String("event_type", "balance_fetch_failed"),
		slog.String("run_id", runID),
		slog.String("account_id", accountID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (el *EventLogger) LogPriceFetchFailed(ctx context.Context, missing int, errorMsg string) {
	el.logger.WarnContext(ctx, "price fetch failed",
		slog.String("event_type", "price_fetch_failed"),
		slog.Int("missing", missing),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (el *EventLogger) LogPersistenceFailed(ctx context.Context, runID string, accountIDs []uuid.UUID, errorMsg string) {
	ids := make([]string, len(accountIDs))
	for i, id := range accountIDs {
		ids[i] = id.String()
	}

	el.logger.ErrorContext(ctx, "portfolio values not persisted",
		slog.String("event_type", "valuation_persistence_failed"),
		slog.String("run_id", runID),
		slog.Any("account_ids", ids),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (el *EventLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	el.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

type correlationIDKey struct{}

// WithCorrelationID tags ctx so every event logged under it can be joined to one request or run.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}
