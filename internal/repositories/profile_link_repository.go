package repositories

import (
	"fmt"

	"walletboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileLinkRepository struct {
	db *gorm.DB
}

func NewProfileLinkRepository(db *gorm.DB) ProfileLinkRepositoryInterface {
	return &profileLinkRepository{db: db}
}

func (r *profileLinkRepository) ListSnsLinks(accountID uuid.UUID) ([]models.SnsLink, error) {
	var links []models.SnsLink
	if err := r.db.Where("account_id = ?", accountID).
		Order("platform ASC").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list sns links: %w", err)
	}
	return links, nil
}

// ListAddresses returns the account's linked addresses, oldest first. Private ones are
// included only when includePrivate is set.
func (r *profileLinkRepository) ListAddresses(accountID uuid.UUID, includePrivate bool) ([]models.LinkedAddress, error) {
	query := r.db.Where("account_id = ?", accountID)
	if !includePrivate {
		query = query.Where("is_public = ?", true)
	}

	var addresses []models.LinkedAddress
	if err := query.Order("created_at ASC").Order("id ASC").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}
