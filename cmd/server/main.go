package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"walletboard/internal/config"
	"walletboard/internal/database"
	"walletboard/internal/handlers"
	"walletboard/internal/middleware"
	"walletboard/internal/repositories"
	"walletboard/internal/scheduler"
	"walletboard/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Server.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	// nil unless enabled; a typed nil would defeat the health check's nil test
	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled {
		client, err := database.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		redisClient = client
		logger.Info("redis connected", slog.String("addr", cfg.Redis.Addr))
	}

	var (
		sessions   services.SessionStoreInterface
		priceCache services.PriceCacheInterface
		jobLock    services.JobLockInterface
	)
	if redisClient != nil {
		sessions = services.NewRedisSessionStore(redisClient)
		priceCache = services.NewRedisPriceCache(redisClient)
		jobLock = services.NewRedisJobLock(redisClient)
	} else {
		sessions = services.NewMemorySessionStore(time.Minute)
		priceCache = services.NewMemoryPriceCache(cfg.Pricing.CacheTTL, 2*cfg.Pricing.CacheTTL)
		jobLock = services.NewLocalJobLock()
	}

	accountRepo := repositories.NewAccountRepository(db.DB)
	postRepo := repositories.NewPostRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	eventLogger := services.NewEventLogger(logger)
	auditService := services.NewAuditService(auditRepo)
	tokenService := services.NewTokenService(&cfg.JWT)

	balanceClient, err := services.NewAlchemyBalanceClient(ctx, &cfg.Chain)
	if err != nil {
		return err
	}
	priceService := services.NewTokenPriceService(
		priceCache,
		services.NewCoinGeckoClient(&cfg.Pricing, logger),
		metrics,
		eventLogger,
		cfg.Pricing.CacheTTL,
		logger,
	)
	valuationService := services.NewPortfolioValuationService(
		accountRepo,
		balanceClient,
		priceService,
		jobLock,
		services.NewObservedCircuitBreaker("balances", services.DefaultCircuitBreakerConfig(), metrics, eventLogger),
		auditService,
		eventLogger,
		metrics,
		services.PortfolioValuationConfig{
			Workers:        cfg.Chain.BalanceWorkers,
			BalanceTimeout: cfg.Chain.BalanceTimeout,
			LockTTL:        cfg.Valuation.LockTTL,
			TokenDecimals:  cfg.Valuation.TokenDecimals,
		},
		logger,
	)
	walletAuthService := services.NewWalletAuthService(
		sessions,
		services.NewEthereumSignatureRecoverer(),
		accountRepo,
		auditService,
		tokenService,
		metrics,
		cfg.Security.ChallengeTTL,
		logger,
	)
	postService := services.NewPostService(postRepo, auditService, metrics, logger)
	profileService := services.NewProfileService(
		accountRepo,
		repositories.NewProfileLinkRepository(db.DB),
		balanceClient,
		services.NewAlchemyNFTClient(&cfg.Chain, logger),
		auditService,
		services.ProfileServiceConfig{
			BalanceCacheTTL: cfg.Pricing.CacheTTL,
			NFTCacheTTL:     cfg.Chain.NFTCacheTTL,
			BalanceTimeout:  cfg.Chain.BalanceTimeout,
			TokenDecimals:   cfg.Valuation.TokenDecimals,
		},
		logger,
	)

	jobs, err := scheduler.New(valuationService, auditService, scheduler.Config{
		ValuationSpec:  cfg.Valuation.CronSpec,
		RunTimeout:     cfg.Valuation.RunTimeout,
		AuditPurgeSpec: cfg.Security.AuditPurgeCronSpec,
		AuditRetention: cfg.Security.AuditRetention,
	}, logger)
	if err != nil {
		return err
	}
	jobs.Start()
	defer jobs.Stop()

	if cfg.Valuation.RunOnStart {
		go jobs.RunNow(ctx)
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.IsDevelopment()
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(metrics)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(metrics))
	e.Use(middleware.SecurityHeaders(cfg.Security.SecureCookies))
	e.Use(middleware.RateLimiter(ctx, cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))

	registerRoutes(e, routeHandlers{
		health:     handlers.NewHealthCheckHandler(db.DB, redisClient, version),
		walletAuth: handlers.NewWalletAuthHandler(walletAuthService, &cfg.Security),
		posts:      handlers.NewPostHandler(postService),
		profiles:   handlers.NewProfileHandler(profileService, auditService),
	}, tokenService)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			slog.String("addr", server.Addr),
			slog.String("environment", cfg.Server.Environment),
			slog.String("version", version),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
