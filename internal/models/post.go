package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PostSortNewest = "newest"
	PostSortLikes  = "likes"

	MaxPostContentLength = 5000
)

var ErrEmptyPostContent = errors.New("post content is required")

type Post struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	LikesCount int       `gorm:"not null;default:0" json:"likes_count"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`

	Author *Account   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Likes  []PostLike `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Post) Validate() error {
	if p.AuthorID == uuid.Nil {
		return errors.New("author is required")
	}

	if strings.TrimSpace(p.Content) == "" {
		return ErrEmptyPostContent
	}

	if len(p.Content) > MaxPostContentLength {
		return fmt.Errorf("post content must be at most %d characters", MaxPostContentLength)
	}

	if p.LikesCount < 0 {
		return errors.New("likes count cannot be negative")
	}

	return nil
}

func (p *Post) TableName() string {
	return "posts"
}

// PostLike records one account liking one post; the pair is unique.
type PostLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_account_post" json:"account_id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_account_post;index" json:"post_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (l *PostLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	return nil
}

func (l *PostLike) TableName() string {
	return "post_likes"
}

// PostFilters controls feed listing.
type PostFilters struct {
	Sort   string
	Offset int
	Limit  int
}

func IsValidPostSort(sort string) bool {
	return sort == PostSortNewest || sort == PostSortLikes
}

// PostPage is one page of the feed as seen by a viewer.
type PostPage struct {
	Posts    []Post
	Total    int64
	LikedIDs map[uuid.UUID]bool
}

// LikeResult is the state of a post after a like toggle.
type LikeResult struct {
	PostID     uuid.UUID
	Liked      bool
	LikesCount int
}
