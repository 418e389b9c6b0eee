package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"walletboard/internal/dto"
	"walletboard/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db        *gorm.DB
	redis     redis.UniversalClient
	version   string
	startedAt time.Time
}

// NewHealthCheckHandler creates a new health check handler. redisClient is nil when redis is disabled.
func NewHealthCheckHandler(db *gorm.DB, redisClient redis.UniversalClient, version string) *HealthCheckHandler {
	return &HealthCheckHandler{
		db:        db,
		redis:     redisClient,
		version:   version,
		startedAt: time.Now(),
	}
}

// HealthCheck pings the database and, when configured, redis
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]string{"database": "ok"}
	var failed []string

	if err := h.pingDatabase(ctx); err != nil {
		checks["database"] = "unavailable"
		failed = append(failed, "Database connection failed")
	}

	if h.redis != nil {
		checks["redis"] = "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unavailable"
			failed = append(failed, "Redis connection failed")
		}
	}

	if len(failed) > 0 {
		sort.Strings(failed)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails(failed...))
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Checks:  checks,
		Version: h.version,
		Uptime:  time.Since(h.startedAt).Round(time.Second).String(),
	})
}

func (h *HealthCheckHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
