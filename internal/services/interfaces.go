package services

import (
	"context"
	"time"

	"walletboard/internal/dto"
	"walletboard/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	GetAccountActivity(accountID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	LogNonceIssued(sessionID, ipAddress, userAgent string) error
	LogWalletLogin(accountID uuid.UUID, walletAddress, ipAddress, userAgent string) error
	LogFailedWalletLogin(claimedAddress, reason, ipAddress, userAgent string) error
	LogAccountCreated(accountID uuid.UUID, walletAddress, ipAddress, userAgent string) error
	LogProfileUpdated(accountID uuid.UUID, ipAddress, userAgent string, changes map[string]interface{}) error
	LogPostCreated(accountID, postID uuid.UUID, ipAddress, userAgent string) error
	LogValuationRun(accountsSeen, accountsUpdated int, duration time.Duration) error
	PurgeOlderThan(retention time.Duration) (int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// EventLoggerInterface writes structured operational events for the background job and outbound calls.
type EventLoggerInterface interface {
	LogValuationStarted(ctx context.Context, runID string, accounts int)
	LogValuationCompleted(ctx context.Context, runID string, updated int, durationMs int64)
	LogValuationSkipped(ctx context.Context, runID string, reason string)
	LogBalanceFetchFailed(ctx context.Context, runID string, accountID uuid.UUID, errorMsg string)
	LogPriceFetchFailed(ctx context.Context, missing int, errorMsg string)
	LogPersistenceFailed(ctx context.Context, runID string, accountIDs []uuid.UUID, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(account *models.Account) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.AccessClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// SessionStoreInterface keeps at most one outstanding challenge per session.
type SessionStoreInterface interface {
	Put(ctx context.Context, sessionID, nonce string, ttl time.Duration) error
	Take(ctx context.Context, sessionID string) (string, error)
}

type SignatureRecovererInterface interface {
	RecoverAddress(hash []byte, signature string) (common.Address, error)
}

type WalletAuthServiceInterface interface {
	IssueChallenge(ctx context.Context, sessionID, ipAddress, userAgent string) (string, error)
	Authenticate(ctx context.Context, sessionID, walletAddress, signature, ipAddress, userAgent string) (*models.Account, error)
	Login(ctx context.Context, sessionID string, req *dto.WalletLoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
}

type PriceCacheInterface interface {
	Get(ctx context.Context, address string) (decimal.Decimal, bool, error)
	GetMany(ctx context.Context, addresses []string) (map[string]decimal.Decimal, error)
	Set(ctx context.Context, address string, price decimal.Decimal, ttl time.Duration) error
	SetMany(ctx context.Context, prices map[string]decimal.Decimal, ttl time.Duration) error
}

type PriceClientInterface interface {
	FetchTokenPrices(ctx context.Context, addresses []string) (map[string]decimal.Decimal, error)
}

type BalanceClientInterface interface {
	FetchTokenBalances(ctx context.Context, walletAddress string) ([]models.TokenBalance, error)
}

type NFTClientInterface interface {
	FetchNFTs(ctx context.Context, owner string) ([]models.NFT, error)
}

type TokenPriceServiceInterface interface {
	GetTokenPrices(ctx context.Context, addresses []string) map[string]decimal.Decimal
}

// JobLockInterface grants a lease on a named job. release is a no-op when acquired is false.
type JobLockInterface interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (release func(), acquired bool, err error)
}

type PortfolioValuationServiceInterface interface {
	Run(ctx context.Context) (int, error)
}

type PostServiceInterface interface {
	CreatePost(authorID uuid.UUID, content, ipAddress, userAgent string) (*models.Post, error)
	ListPosts(filters models.PostFilters, viewerID *uuid.UUID) (*models.PostPage, error)
	ToggleLike(postID, accountID uuid.UUID) (*models.LikeResult, error)
}

type ProfileServiceInterface interface {
	GetAccount(accountID uuid.UUID) (*models.Account, error)
	GetProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*models.ProfileView, error)
	UpdateProfile(accountID uuid.UUID, req *dto.UpdateProfileRequest, ipAddress, userAgent string) (*models.Account, error)
	GetRanking(offset, limit int) ([]models.Account, int64, error)
}
