package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"walletboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// bulkUpdateBatchSize bounds the CASE arms and bind parameters of one UPDATE statement.
const bulkUpdateBatchSize = 500

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrNicknameTaken        = errors.New("nickname already taken")
	ErrWalletConflict       = errors.New("wallet address conflicts with an existing username")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return ErrAccountAlreadyExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{}
	if err := r.db.Where("id = ?", id).First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (r *accountRepository) GetByUsername(username string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by username: %w", err)
	}
	return &account, nil
}

// FindByWalletAddress looks the wallet up case-insensitively.
func (r *accountRepository) FindByWalletAddress(walletAddress string) (*models.Account, error) {
	address := models.NormalizeWalletAddress(walletAddress)

	var account models.Account
	if err := r.db.Where("wallet_address = ?", address).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by wallet address: %w", err)
	}
	return &account, nil
}

// GetOrCreateByWalletAddress relies on the unique wallet_address index: a losing
// concurrent insert is answered with the winner's row.
func (r *accountRepository) GetOrCreateByWalletAddress(walletAddress string) (*models.Account, bool, error) {
	address := models.NormalizeWalletAddress(walletAddress)
	if !models.IsValidWalletAddress(address) {
		return nil, false, fmt.Errorf("%w: %q", models.ErrInvalidWalletAddress, walletAddress)
	}

	account, err := r.FindByWalletAddress(address)
	if err == nil {
		return account, false, nil
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return nil, false, err
	}

	account = models.NewWalletAccount(address)
	if err := r.db.Create(account).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) && !isDuplicateKeyError(err) {
			return nil, false, fmt.Errorf("failed to create wallet account: %w", err)
		}

		existing, lookupErr := r.FindByWalletAddress(address)
		if lookupErr == nil {
			return existing, false, nil
		}
		if !errors.Is(lookupErr, ErrAccountNotFound) {
			return nil, false, lookupErr
		}

		// another account already uses the address as its nickname; the newcomer falls back to its username
		account = models.NewWalletAccount(address)
		account.Nickname = nil
		if err := r.db.Create(account).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
				return r.existingOrConflict(address)
			}
			return nil, false, fmt.Errorf("failed to create wallet account: %w", err)
		}
	}

	return account, true, nil
}

func (r *accountRepository) existingOrConflict(address string) (*models.Account, bool, error) {
	existing, err := r.FindByWalletAddress(address)
	if errors.Is(err, ErrAccountNotFound) {
		// the collision was on username, not on the wallet
		return nil, false, ErrWalletConflict
	}
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// Update persists the editable profile fields.
func (r *accountRepository) Update(account *models.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	account.UpdatedAt = time.Now()
	result := r.db.Model(account).
		Select("nickname", "bio", "is_public", "theme", "email", "updated_at").
		Updates(account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) || isDuplicateKeyError(result.Error) {
			return ErrNicknameTaken
		}
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) UpdateLastLogin(id uuid.UUID, at time.Time) error {
	result := r.db.Model(&models.Account{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to update last login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ListActiveWithWallet returns only the id and wallet_address columns.
func (r *accountRepository) ListActiveWithWallet() ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Model(&models.Account{}).
		Select("id", "wallet_address").
		Where("is_active = ?", true).
		Where("wallet_address IS NOT NULL AND wallet_address <> ''").
		Order("created_at ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active wallet accounts: %w", err)
	}
	return accounts, nil
}

// BulkUpdatePortfolioValues writes every value with one CASE update per batch,
// all batches in one transaction. Accounts not listed are untouched.
func (r *accountRepository) BulkUpdatePortfolioValues(updates []models.PortfolioUpdate) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	var total int64
	now := time.Now()

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(updates); start += bulkUpdateBatchSize {
			end := start + bulkUpdateBatchSize
			if end > len(updates) {
				end = len(updates)
			}

			query, args := buildPortfolioUpdate(updates[start:end], now)
			result := tx.Exec(query, args...)
			if result.Error != nil {
				return fmt.Errorf("failed to bulk update portfolio values: %w", result.Error)
			}
			total += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

func buildPortfolioUpdate(batch []models.PortfolioUpdate, now time.Time) (string, []interface{}) {
	var sb strings.Builder
	args := make([]interface{}, 0, len(batch)*2+2)
	ids := make([]uuid.UUID, 0, len(batch))

	sb.WriteString("UPDATE accounts SET portfolio_value = CASE id")
	for _, u := range batch {
		sb.WriteString(" WHEN ? THEN CAST(? AS NUMERIC)")
		args = append(args, u.AccountID, u.Value.StringFixed(2))
		ids = append(ids, u.AccountID)
	}
	sb.WriteString(" ELSE portfolio_value END, updated_at = ? WHERE id IN ?")
	args = append(args, now, ids)

	return sb.String(), args
}

// ListRanking returns public active accounts ordered by portfolio value.
func (r *accountRepository) ListRanking(offset, limit int) ([]models.Account, int64, error) {
	var accounts []models.Account
	var total int64

	query := r.db.Model(&models.Account{}).
		Where("is_public = ? AND is_active = ?", true, true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ranking: %w", err)
	}

	if err := query.Order("portfolio_value DESC").
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&accounts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list ranking: %w", err)
	}

	return accounts, total, nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
