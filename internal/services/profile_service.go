package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"walletboard/internal/dto"
	"walletboard/internal/models"
	"walletboard/internal/repositories"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const (
	RankingPerPage = 50

	balanceCacheKeyPrefix = "balances_"
	nftCacheKeyPrefix     = "nfts_"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfilePrivate    = errors.New("profile is private")
	ErrNicknameTaken     = errors.New("nickname already taken")
	ErrNicknameReserved  = errors.New("nickname is reserved")
	ErrInvalidThemeColor = errors.New("invalid theme color")
	ErrEmptyUpdate       = errors.New("no profile fields to update")
)

type ProfileServiceConfig struct {
	BalanceCacheTTL time.Duration
	NFTCacheTTL     time.Duration
	BalanceTimeout  time.Duration
	TokenDecimals   int32
}

type profileService struct {
	accountRepo   repositories.AccountRepositoryInterface
	linkRepo      repositories.ProfileLinkRepositoryInterface
	balances      BalanceClientInterface
	nfts          NFTClientInterface
	auditService  AuditServiceInterface
	config        ProfileServiceConfig
	providerCache *cache.Cache
	inflight      singleflight.Group
	logger        *slog.Logger
}

// NewProfileService creates the profile service. Live balances and NFTs shown on profile pages
// are cached per wallet and concurrent lookups of one wallet share a single provider call.
func NewProfileService(
	accountRepo repositories.AccountRepositoryInterface,
	linkRepo repositories.ProfileLinkRepositoryInterface,
	balances BalanceClientInterface,
	nfts NFTClientInterface,
	auditService AuditServiceInterface,
	config ProfileServiceConfig,
	logger *slog.Logger,
) ProfileServiceInterface {
	if config.BalanceCacheTTL <= 0 {
		config.BalanceCacheTTL = 10 * time.Minute
	}
	if config.NFTCacheTTL <= 0 {
		config.NFTCacheTTL = 10 * time.Minute
	}
	if config.TokenDecimals <= 0 {
		config.TokenDecimals = models.DefaultTokenDecimals
	}

	return &profileService{
		accountRepo:   accountRepo,
		linkRepo:      linkRepo,
		balances:      balances,
		nfts:          nfts,
		auditService:  auditService,
		config:        config,
		providerCache: cache.New(config.BalanceCacheTTL, 2*config.BalanceCacheTTL),
		logger:        logger,
	}
}

func (s *profileService) GetAccount(accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetProfile loads a profile with its live holdings, NFTs and links. Private profiles are only
// shown to their owner, and so are private linked addresses.
func (s *profileService) GetProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*models.ProfileView, error) {
	account, err := s.accountRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	isOwner := viewerID != nil && *viewerID == account.ID
	if !account.IsActive && !isOwner {
		return nil, ErrProfileNotFound
	}
	if !account.IsPublic && !isOwner {
		return nil, ErrProfilePrivate
	}

	view := &models.ProfileView{
		Account:           account,
		Holdings:          []models.TokenHolding{},
		BalancesAvailable: true,
		NFTs:              []models.NFT{},
		NFTsAvailable:     true,
		IsOwner:           isOwner,
	}

	if view.SnsLinks, err = s.linkRepo.ListSnsLinks(account.ID); err != nil {
		return nil, fmt.Errorf("failed to get profile links: %w", err)
	}
	if view.Addresses, err = s.linkRepo.ListAddresses(account.ID, isOwner); err != nil {
		return nil, fmt.Errorf("failed to get profile addresses: %w", err)
	}

	if !account.HasWallet() {
		return view, nil
	}
	wallet := *account.WalletAddress

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		balances, err := s.walletBalances(ctx, wallet)
		if err != nil {
			s.logger.Warn("failed to load wallet balances for profile",
				slog.String("username", account.Username),
				slog.String("error", err.Error()),
			)
			view.BalancesAvailable = false
			return
		}
		view.Holdings = models.HoldingsFromBalances(balances, s.config.TokenDecimals)
	}()
	go func() {
		defer wg.Done()
		nfts, err := s.walletNFTs(ctx, wallet)
		if err != nil {
			s.logger.Warn("failed to load wallet nfts for profile",
				slog.String("username", account.Username),
				slog.String("error", err.Error()),
			)
			view.NFTsAvailable = false
			return
		}
		view.NFTs = nfts
	}()
	wg.Wait()

	return view, nil
}

func (s *profileService) walletBalances(ctx context.Context, wallet string) ([]models.TokenBalance, error) {
	key := balanceCacheKeyPrefix + models.NormalizeWalletAddress(wallet)
	return cachedLookup(ctx, s, key, s.config.BalanceCacheTTL, func(callCtx context.Context) ([]models.TokenBalance, error) {
		return s.balances.FetchTokenBalances(callCtx, wallet)
	})
}

func (s *profileService) walletNFTs(ctx context.Context, wallet string) ([]models.NFT, error) {
	key := nftCacheKeyPrefix + models.NormalizeWalletAddress(wallet)
	return cachedLookup(ctx, s, key, s.config.NFTCacheTTL, func(callCtx context.Context) ([]models.NFT, error) {
		return s.nfts.FetchNFTs(callCtx, wallet)
	})
}

// cachedLookup serves key from the provider cache, collapsing concurrent misses into one fetch.
// Failed fetches are not cached.
func cachedLookup[T any](ctx context.Context, s *profileService, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	if cached, found := s.providerCache.Get(key); found {
		return cached.(T), nil
	}

	result, err, _ := s.inflight.Do(key, func() (interface{}, error) {
		if cached, found := s.providerCache.Get(key); found {
			return cached, nil
		}

		callCtx := ctx
		if s.config.BalanceTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, s.config.BalanceTimeout)
			defer cancel()
		}

		value, err := fetch(callCtx)
		if err != nil {
			return nil, err
		}
		s.providerCache.Set(key, value, ttl)
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

// UpdateProfile applies the non-nil fields of req
func (s *profileService) UpdateProfile(accountID uuid.UUID, req *dto.UpdateProfileRequest, ipAddress, userAgent string) (*models.Account, error) {
	if req == nil || req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	account, err := s.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})

	if req.Nickname != nil {
		nickname := strings.TrimSpace(*req.Nickname)
		if nickname == "" {
			nickname = account.Username
		}
		// wallet-shaped nicknames are reserved for the wallet's own first login
		if models.IsValidWalletAddress(models.NormalizeWalletAddress(nickname)) && !strings.EqualFold(nickname, account.Username) {
			return nil, ErrNicknameReserved
		}
		if account.Nickname == nil || *account.Nickname != nickname {
			account.Nickname = &nickname
			changes["nickname"] = nickname
		}
	}

	if req.Bio != nil && *req.Bio != account.Bio {
		account.Bio = *req.Bio
		changes["bio"] = true
	}

	if req.IsPublic != nil && *req.IsPublic != account.IsPublic {
		account.IsPublic = *req.IsPublic
		changes["is_public"] = account.IsPublic
	}

	if req.ThemeColor != nil {
		color := strings.ToLower(strings.TrimSpace(*req.ThemeColor))
		if !isThemeChoice(color) {
			return nil, ErrInvalidThemeColor
		}
		if color != account.ThemeColor() {
			account.SetThemeColor(color)
			changes["theme_color"] = color
		}
	}

	if len(changes) == 0 {
		return account, nil
	}

	if err := s.accountRepo.Update(account); err != nil {
		if errors.Is(err, repositories.ErrNicknameTaken) {
			return nil, ErrNicknameTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := s.auditService.LogProfileUpdated(account.ID, ipAddress, userAgent, changes); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", models.AuditActionProfileUpdated)
	}

	return account, nil
}

// GetRanking lists public accounts by portfolio value, highest first
func (s *profileService) GetRanking(offset, limit int) ([]models.Account, int64, error) {
	if limit <= 0 {
		limit = RankingPerPage
	}
	if offset < 0 {
		offset = 0
	}

	accounts, total, err := s.accountRepo.ListRanking(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get ranking: %w", err)
	}
	return accounts, total, nil
}

func isThemeChoice(color string) bool {
	for _, choice := range models.ThemeChoices {
		if choice == color {
			return true
		}
	}
	return false
}
