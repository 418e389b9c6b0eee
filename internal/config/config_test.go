package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeys(t *testing.T) {
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
}

func encodeKeyPair(t *testing.T) (string, string) {
	t.Helper()

	private, public, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	publicDER, err := x509.MarshalPKIXPublicKey(public)
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(private)})
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})
	return base64.StdEncoding.EncodeToString(privatePEM), base64.StdEncoding.EncodeToString(publicPEM)
}

func TestLoad_Defaults(t *testing.T) {
	clearKeys(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("VALUATION_TOKEN_DECIMALS", "")
	t.Setenv("CHALLENGE_TTL", "")
	t.Setenv("ALCHEMY_API_KEY", "demo")
	t.Setenv("ALCHEMY_NFT_URL", "")
	t.Setenv("NFT_CACHE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, int32(18), cfg.Valuation.TokenDecimals)
	assert.Equal(t, 10*time.Minute, cfg.Security.ChallengeTTL)
	assert.Equal(t, "sessionid", cfg.Security.SessionCookieName)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "db/migrations", cfg.Database.MigrationsPath)
	assert.NotNil(t, cfg.JWT.PrivateKey, "development generates a throwaway key")
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "https://eth-mainnet.g.alchemy.com/nft/v2/demo", cfg.Chain.NFTAPIURL)
	assert.Equal(t, 10*time.Minute, cfg.Chain.NFTCacheTTL)
}

func TestLoad_UnparsableValuesFallBack(t *testing.T) {
	clearKeys(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("RATE_LIMIT_BURST", "lots")
	t.Setenv("SESSION_COOKIE_SECURE", "maybe")
	t.Setenv("PRICE_CACHE_TTL", "ten minutes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Security.RateLimitBurst)
	assert.False(t, cfg.Security.SecureCookies)
	assert.Equal(t, 10*time.Minute, cfg.Pricing.CacheTTL)
}

func TestLoad_ProductionRequiresKeys(t *testing.T) {
	clearKeys(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_PRIVATE_KEY")
}

func TestLoad_ProductionWithKeys(t *testing.T) {
	privateB64, publicB64 := encodeKeyPair(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PRIVATE_KEY", privateB64)
	t.Setenv("JWT_PUBLIC_KEY", publicB64)

	t.Run("wildcard CORS rejected", func(t *testing.T) {
		t.Setenv("CORS_ALLOW_ORIGINS", "")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CORS_ALLOW_ORIGINS")
	})

	t.Run("explicit origins", func(t *testing.T) {
		t.Setenv("CORS_ALLOW_ORIGINS", " https://walletboard.app, ,https://admin.walletboard.app ")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://walletboard.app", "https://admin.walletboard.app"}, cfg.Server.CORSAllowOrigins)
		assert.True(t, cfg.JWT.PrivateKey.PublicKey.Equal(cfg.JWT.PublicKey))
	})
}

func TestLoad_MismatchedKeys(t *testing.T) {
	privateB64, _ := encodeKeyPair(t)
	_, otherPublicB64 := encodeKeyPair(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_PRIVATE_KEY", privateB64)
	t.Setenv("JWT_PUBLIC_KEY", otherPublicB64)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestLoad_AcceptsPKCS8PrivateKey(t *testing.T) {
	private, public, err := GenerateRSAKeyPair()
	require.NoError(t, err)
	privateDER, err := x509.MarshalPKCS8PrivateKey(private)
	require.NoError(t, err)
	publicDER, err := x509.MarshalPKIXPublicKey(public)
	require.NoError(t, err)

	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("JWT_PRIVATE_KEY", base64.StdEncoding.EncodeToString(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privateDER})))
	t.Setenv("JWT_PUBLIC_KEY", base64.StdEncoding.EncodeToString(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})))

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, private.Equal(cfg.JWT.PrivateKey))
}

func TestLoad_RejectsGarbageKeys(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("JWT_PRIVATE_KEY", "not base64!")
	t.Setenv("JWT_PUBLIC_KEY", "not base64!")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_PRIVATE_KEY is not base64")

	t.Setenv("JWT_PRIVATE_KEY", base64.StdEncoding.EncodeToString([]byte("no pem here")))
	t.Setenv("JWT_PUBLIC_KEY", base64.StdEncoding.EncodeToString([]byte("no pem here")))
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_PRIVATE_KEY")
}

func TestLoad_TrimsNumericValues(t *testing.T) {
	clearKeys(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("RATE_LIMIT_BURST", " 42 ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Security.RateLimitBurst)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Environment: "development"},
			Security:  SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 10, ChallengeTTL: time.Minute},
			Pricing:   PricingConfig{MaxTokensPerRequest: 100},
			Valuation: ValuationConfig{TokenDecimals: 18, RunTimeout: 5 * time.Minute, LockTTL: 10 * time.Minute},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero rate", func(c *Config) { c.Security.RateLimitPerSecond = 0 }, "RATE_LIMIT"},
		{"no challenge ttl", func(c *Config) { c.Security.ChallengeTTL = 0 }, "CHALLENGE_TTL"},
		{"decimals too large", func(c *Config) { c.Valuation.TokenDecimals = 77 }, "VALUATION_TOKEN_DECIMALS"},
		{"no price batch", func(c *Config) { c.Pricing.MaxTokensPerRequest = 0 }, "PRICE_MAX_TOKENS_PER_REQUEST"},
		{"lock expires before run", func(c *Config) { c.Valuation.LockTTL = c.Valuation.RunTimeout }, "VALUATION_LOCK_TTL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for level, want := range tests {
		cfg := ServerConfig{LogLevel: level}
		assert.Equal(t, want, cfg.SlogLevel(), level)
	}
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5433", User: "wb", Password: "secret", Name: "walletboard", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=wb password=secret dbname=walletboard sslmode=require", cfg.DSN())
}
