package config

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Security  SecurityConfig
	Redis     RedisConfig
	Chain     ChainConfig
	Pricing   PricingConfig
	Valuation ValuationConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	LogLevel         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	MigrationsPath  string
	Seed            bool
	SeedsPath       string
}

type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	SessionCookieName  string
	SessionCookieTTL   time.Duration
	ChallengeTTL       time.Duration
	SecureCookies      bool
	AuditRetention     time.Duration
	AuditPurgeCronSpec string
}

// RedisConfig switches the shared cache, session store and job lock to redis when Enabled.
type RedisConfig struct {
	Enabled      bool
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type ChainConfig struct {
	RPCURL         string
	BalanceTimeout time.Duration
	BalanceWorkers int
	NFTAPIURL      string
	NFTCacheTTL    time.Duration
}

type PricingConfig struct {
	BaseURL             string
	APIKey              string
	Platform            string
	Timeout             time.Duration
	CacheTTL            time.Duration
	MaxTokensPerRequest int
}

type ValuationConfig struct {
	CronSpec      string
	RunTimeout    time.Duration
	LockTTL       time.Duration
	TokenDecimals int32
	RunOnStart    bool
}

// Load reads the configuration from the environment. Unset or unparsable values fall back
// to their defaults; the combined result is then checked by Validate.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "walletboard"),
			Password:        getEnv("DB_PASSWORD", "walletboard"),
			Name:            getEnv("DB_NAME", "walletboard"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			Seed:            getBoolEnv("SEED_DATABASE", false),
			SeedsPath:       getEnv("SEEDS_PATH", "db/seeds"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			SessionCookieName:  getEnv("SESSION_COOKIE_NAME", "sessionid"),
			SessionCookieTTL:   getDurationEnv("SESSION_COOKIE_TTL", 14*24*time.Hour),
			ChallengeTTL:       getDurationEnv("CHALLENGE_TTL", 10*time.Minute),
			SecureCookies:      getBoolEnv("SESSION_COOKIE_SECURE", false),
			AuditRetention:     getDurationEnv("AUDIT_RETENTION", 90*24*time.Hour),
			AuditPurgeCronSpec: getEnv("AUDIT_PURGE_CRON", "0 30 3 * * *"),
		},
		JWT: JWTConfig{
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 24*time.Hour),
			Issuer:              getEnv("JWT_ISSUER", "walletboard"),
		},
		Redis: RedisConfig{
			Enabled:      getBoolEnv("REDIS_ENABLED", false),
			Addr:         getEnv("REDIS_ADDR", "localhost:6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Chain: ChainConfig{
			RPCURL:         getEnv("ALCHEMY_RPC_URL", "https://eth-mainnet.g.alchemy.com/v2/"+os.Getenv("ALCHEMY_API_KEY")),
			BalanceTimeout: getDurationEnv("BALANCE_TIMEOUT", 8*time.Second),
			BalanceWorkers: getIntEnv("BALANCE_WORKERS", 8),
			NFTAPIURL:      getEnv("ALCHEMY_NFT_URL", "https://eth-mainnet.g.alchemy.com/nft/v2/"+os.Getenv("ALCHEMY_API_KEY")),
			NFTCacheTTL:    getDurationEnv("NFT_CACHE_TTL", 10*time.Minute),
		},
		Pricing: PricingConfig{
			BaseURL:             getEnv("COINGECKO_API_URL", "https://api.coingecko.com/api/v3"),
			APIKey:              getEnv("COINGECKO_API_KEY", ""),
			Platform:            getEnv("COINGECKO_PLATFORM", "ethereum"),
			Timeout:             getDurationEnv("PRICE_TIMEOUT", 8*time.Second),
			CacheTTL:            getDurationEnv("PRICE_CACHE_TTL", 10*time.Minute),
			MaxTokensPerRequest: getIntEnv("PRICE_MAX_TOKENS_PER_REQUEST", 100),
		},
		Valuation: ValuationConfig{
			CronSpec:      getEnv("VALUATION_CRON", "0 */15 * * * *"),
			RunTimeout:    getDurationEnv("VALUATION_RUN_TIMEOUT", 5*time.Minute),
			LockTTL:       getDurationEnv("VALUATION_LOCK_TTL", 10*time.Minute),
			TokenDecimals: int32(getIntEnv("VALUATION_TOKEN_DECIMALS", 18)),
			RunOnStart:    getBoolEnv("VALUATION_RUN_ON_START", false),
		},
	}

	cfg.Server.CORSAllowOrigins = splitList(os.Getenv("CORS_ALLOW_ORIGINS"), []string{"*"})

	privateKey, publicKey, err := cfg.loadJWTKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load JWT keys: %w", err)
	}
	cfg.JWT.PrivateKey, cfg.JWT.PublicKey = privateKey, publicKey

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Security.RateLimitPerSecond <= 0 || c.Security.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive"))
	}
	if c.Security.ChallengeTTL <= 0 {
		errs = append(errs, errors.New("CHALLENGE_TTL must be positive"))
	}
	if c.Valuation.TokenDecimals < 0 || c.Valuation.TokenDecimals > 36 {
		errs = append(errs, fmt.Errorf("VALUATION_TOKEN_DECIMALS out of range: %d", c.Valuation.TokenDecimals))
	}
	if c.Valuation.LockTTL <= c.Valuation.RunTimeout {
		errs = append(errs, fmt.Errorf("VALUATION_LOCK_TTL (%s) must exceed VALUATION_RUN_TIMEOUT (%s)", c.Valuation.LockTTL, c.Valuation.RunTimeout))
	}
	if c.Pricing.MaxTokensPerRequest <= 0 {
		errs = append(errs, errors.New("PRICE_MAX_TOKENS_PER_REQUEST must be positive"))
	}
	if c.IsProduction() && len(c.Server.CORSAllowOrigins) == 1 && c.Server.CORSAllowOrigins[0] == "*" {
		errs = append(errs, errors.New("CORS_ALLOW_ORIGINS must list explicit origins in production"))
	}
	return errors.Join(errs...)
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *ServerConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// parseEnv returns defaultValue when key is unset, blank or rejected by parse.
func parseEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := parse(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getIntEnv(key string, defaultValue int) int {
	return parseEnv(key, defaultValue, strconv.Atoi)
}

func getBoolEnv(key string, defaultValue bool) bool {
	return parseEnv(key, defaultValue, strconv.ParseBool)
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	return parseEnv(key, defaultValue, time.ParseDuration)
}

// loadJWTKeys reads the base64 PEM pair from JWT_PRIVATE_KEY and JWT_PUBLIC_KEY. Outside
// production a missing pair is replaced by a throwaway key, so tokens die with the process.
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyB64 := os.Getenv("JWT_PRIVATE_KEY")
	publicKeyB64 := os.Getenv("JWT_PUBLIC_KEY")

	if privateKeyB64 == "" || publicKeyB64 == "" {
		if c.IsProduction() {
			return nil, nil, errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set in production")
		}
		return GenerateRSAKeyPair()
	}

	privatePEM, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_PRIVATE_KEY is not base64: %w", err)
	}
	publicPEM, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_PUBLIC_KEY is not base64: %w", err)
	}

	// PKCS#1 or PKCS#8 private keys, PKIX or PKCS#1 public keys
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_PRIVATE_KEY: %w", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_PUBLIC_KEY: %w", err)
	}
	if !privateKey.PublicKey.Equal(publicKey) {
		return nil, nil, errors.New("JWT_PUBLIC_KEY does not match JWT_PRIVATE_KEY")
	}
	return privateKey, publicKey, nil
}

func splitList(value string, fallback []string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}

// GenerateRSAKeyPair creates a throwaway 2048-bit signing key.
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("generate RSA key: %w", err)
	}
	return key, &key.PublicKey, nil
}
