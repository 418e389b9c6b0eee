package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"walletboard/internal/models"
	"walletboard/internal/repositories"

	"github.com/google/uuid"
)

const (
	PostsPerPage = 20
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrInvalidPost     = errors.New("invalid post")
	ErrInvalidPostSort = errors.New("invalid post sort")
)

type postService struct {
	postRepo     repositories.PostRepositoryInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewPostService creates the feed service
func NewPostService(
	postRepo repositories.PostRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) PostServiceInterface {
	return &postService{
		postRepo:     postRepo,
		auditService: auditService,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreatePost publishes a post for the author
func (s *postService) CreatePost(authorID uuid.UUID, content, ipAddress, userAgent string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	post := &models.Post{
		AuthorID: authorID,
		Content:  content,
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPost, err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.metrics.IncrementCounter(MetricPostCreated, nil)
	if err := s.auditService.LogPostCreated(authorID, post.ID, ipAddress, userAgent); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", models.AuditActionPostCreated,
			"post_id", post.ID.String())
	}

	return post, nil
}

// ListPosts returns one feed page. When viewerID is set the page carries the posts the viewer liked.
func (s *postService) ListPosts(filters models.PostFilters, viewerID *uuid.UUID) (*models.PostPage, error) {
	if filters.Sort == "" {
		filters.Sort = models.PostSortNewest
	}
	if !models.IsValidPostSort(filters.Sort) {
		return nil, ErrInvalidPostSort
	}
	if filters.Limit <= 0 {
		filters.Limit = PostsPerPage
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	posts, total, err := s.postRepo.List(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	page := &models.PostPage{
		Posts:    posts,
		Total:    total,
		LikedIDs: map[uuid.UUID]bool{},
	}

	if viewerID == nil || len(posts) == 0 {
		return page, nil
	}

	ids := make([]uuid.UUID, len(posts))
	for i, post := range posts {
		ids[i] = post.ID
	}

	liked, err := s.postRepo.LikedPostIDs(*viewerID, ids)
	if err != nil {
		// the feed stays readable without the liked markers
		s.logger.Warn("failed to load liked posts",
			slog.String("account_id", viewerID.String()),
			slog.String("error", err.Error()),
		)
		return page, nil
	}
	page.LikedIDs = liked

	return page, nil
}

// ToggleLike flips the account's like on the post
func (s *postService) ToggleLike(postID, accountID uuid.UUID) (*models.LikeResult, error) {
	liked, count, err := s.postRepo.ToggleLike(postID, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	action := "unlike"
	if liked {
		action = "like"
	}
	s.metrics.IncrementCounter(MetricPostLike, map[string]string{"action": action})

	return &models.LikeResult{
		PostID:     postID,
		Liked:      liked,
		LikesCount: count,
	}, nil
}
