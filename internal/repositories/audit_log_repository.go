package repositories

import (
	"errors"
	"fmt"
	"time"

	"walletboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultPurgeBatch = 1000

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// ListByAccount pages through one account's trail, newest first.
func (r *auditLogRepository) ListByAccount(accountID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	query := r.db.Model(&models.AuditLog{}).Where("account_id = ?", accountID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}
	if total == 0 || int64(offset) >= total {
		return []*models.AuditLog{}, total, nil
	}

	var logs []*models.AuditLog
	err := query.
		Order("created_at DESC").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, total, nil
}

// DeleteBefore removes entries created before cutoff in batches of batchSize rows, so a
// large backlog never holds one long delete. Returns the total removed.
func (r *auditLogRepository) DeleteBefore(cutoff time.Time, batchSize int) (int64, error) {
	if batchSize <= 0 {
		batchSize = defaultPurgeBatch
	}

	var deleted int64
	for {
		batch := r.db.Model(&models.AuditLog{}).
			Select("id").
			Where("created_at < ?", cutoff).
			Limit(batchSize)

		result := r.db.Where("id IN (?)", batch).Delete(&models.AuditLog{})
		if result.Error != nil {
			return deleted, fmt.Errorf("failed to purge audit logs: %w", result.Error)
		}
		deleted += result.RowsAffected

		if result.RowsAffected < int64(batchSize) {
			return deleted, nil
		}
	}
}
