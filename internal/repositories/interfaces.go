package repositories

import (
	"time"

	"walletboard/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByUsername(username string) (*models.Account, error)
	FindByWalletAddress(walletAddress string) (*models.Account, error)
	// GetOrCreateByWalletAddress binds a wallet to exactly one account. created reports whether this call inserted it.
	GetOrCreateByWalletAddress(walletAddress string) (account *models.Account, created bool, err error)
	Update(account *models.Account) error
	UpdateLastLogin(id uuid.UUID, at time.Time) error
	ListActiveWithWallet() ([]models.Account, error)
	BulkUpdatePortfolioValues(updates []models.PortfolioUpdate) (int64, error)
	ListRanking(offset, limit int) ([]models.Account, int64, error)
}

// PostRepositoryInterface defines the contract for post and like operations
type PostRepositoryInterface interface {
	Create(post *models.Post) error
	GetByID(id uuid.UUID) (*models.Post, error)
	List(filters models.PostFilters) ([]models.Post, int64, error)
	ToggleLike(postID, accountID uuid.UUID) (liked bool, likesCount int, err error)
	LikedPostIDs(accountID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

// ProfileLinkRepositoryInterface reads the social links and extra addresses shown on a profile
type ProfileLinkRepositoryInterface interface {
	ListSnsLinks(accountID uuid.UUID) ([]models.SnsLink, error)
	ListAddresses(accountID uuid.UUID, includePrivate bool) ([]models.LinkedAddress, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	ListByAccount(accountID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteBefore(cutoff time.Time, batchSize int) (int64, error)
}
