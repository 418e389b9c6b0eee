package repositories

import (
	"errors"
	"fmt"

	"walletboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeWriteAttempts bounds retries after a unique-pair collision rolled back a like transaction.
const likeWriteAttempts = 3

var (
	ErrPostNotFound = errors.New("post not found")

	errLikeCollision = errors.New("concurrent like collision")
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepositoryInterface {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) Create(post *models.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) GetByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// List returns one feed page with authors preloaded, newest first unless sorted by likes.
func (r *postRepository) List(filters models.PostFilters) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	if err := r.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := r.db.Preload("Author")
	if filters.Sort == models.PostSortLikes {
		query = query.Order("likes_count DESC")
	}
	query = query.Order("created_at DESC").Order("id DESC")

	if err := query.Offset(filters.Offset).Limit(filters.Limit).Find(&posts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, total, nil
}

// ToggleLike removes an existing like or adds a missing one and adjusts likes_count by one.
// Concurrent toggles of one pair never leave more than one record.
func (r *postRepository) ToggleLike(postID, accountID uuid.UUID) (bool, int, error) {
	var lastErr error
	for attempt := 0; attempt < likeWriteAttempts; attempt++ {
		liked, count, err := r.toggleLikeOnce(postID, accountID)
		if !errors.Is(err, errLikeCollision) {
			return liked, count, err
		}
		lastErr = err
	}
	return false, 0, fmt.Errorf("failed to write like after %d attempts: %w", likeWriteAttempts, lastErr)
}

func (r *postRepository) toggleLikeOnce(postID, accountID uuid.UUID) (bool, int, error) {
	var liked bool
	var likesCount int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// serializes every like writer of this post
		var post models.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "likes_count").
			Where("id = ?", postID).
			First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return fmt.Errorf("failed to lock post: %w", err)
		}

		var existing []models.PostLike
		if err := tx.Where("post_id = ? AND account_id = ?", postID, accountID).
			Limit(1).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to read like: %w", err)
		}

		delta := 0
		switch {
		case len(existing) > 0:
			if err := tx.Delete(&models.PostLike{}, "id = ?", existing[0].ID).Error; err != nil {
				return fmt.Errorf("failed to delete like: %w", err)
			}
			delta = -1
			liked = false
		default:
			like := &models.PostLike{PostID: postID, AccountID: accountID}
			if err := tx.Create(like).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
					return errLikeCollision
				}
				return fmt.Errorf("failed to create like: %w", err)
			}
			delta = 1
			liked = true
		}

		if delta != 0 {
			if err := tx.Model(&models.Post{}).
				Where("id = ?", postID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + ?", delta)).Error; err != nil {
				return fmt.Errorf("failed to update likes count: %w", err)
			}
		}

		var updated models.Post
		if err := tx.Select("id", "likes_count").
			Where("id = ?", postID).
			Take(&updated).Error; err != nil {
			return fmt.Errorf("failed to read likes count: %w", err)
		}
		likesCount = updated.LikesCount

		return nil
	})
	if err != nil {
		return false, 0, err
	}

	return liked, likesCount, nil
}

// LikedPostIDs reports which of postIDs the account has liked.
func (r *postRepository) LikedPostIDs(accountID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := make(map[uuid.UUID]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	var likes []models.PostLike
	if err := r.db.Select("post_id").
		Where("account_id = ? AND post_id IN ?", accountID, postIDs).
		Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("failed to get liked posts: %w", err)
	}

	for _, like := range likes {
		liked[like.PostID] = true
	}
	return liked, nil
}
