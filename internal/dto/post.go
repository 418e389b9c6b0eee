package dto

import (
	"time"

	"walletboard/internal/models"

	"github.com/google/uuid"
)

// Post Request DTOs

// CreatePostRequest represents the request payload for publishing a post
type CreatePostRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

// Post Response DTOs

// PostAuthor is the public face of a post's author
type PostAuthor struct {
	Username   string `json:"username"`
	Nickname   string `json:"nickname"`
	ThemeColor string `json:"theme_color"`
}

// PostResponse represents a single post in API responses
type PostResponse struct {
	ID         uuid.UUID   `json:"id"`
	Content    string      `json:"content"`
	LikesCount int         `json:"likes_count"`
	Liked      bool        `json:"liked"`
	Author     *PostAuthor `json:"author,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// PostListResponse represents one page of the feed
type PostListResponse struct {
	Posts      []PostResponse `json:"posts"`
	Sort       string         `json:"sort"`
	Pagination PaginationMeta `json:"pagination"`
}

// LikeResponse is the post state after a like toggle
type LikeResponse struct {
	Success    bool `json:"success"`
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
}

func NewPaginationMeta(page, limit int, total int64) PaginationMeta {
	return PaginationMeta{
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: int64(page*limit) < total,
	}
}

func NewPostAuthor(account *models.Account) *PostAuthor {
	if account == nil {
		return nil
	}
	return &PostAuthor{
		Username:   account.Username,
		Nickname:   account.DisplayName(),
		ThemeColor: account.ThemeColor(),
	}
}

func NewPostResponse(post *models.Post, liked bool) PostResponse {
	return PostResponse{
		ID:         post.ID,
		Content:    post.Content,
		LikesCount: post.LikesCount,
		Liked:      liked,
		Author:     NewPostAuthor(post.Author),
		CreatedAt:  post.CreatedAt,
	}
}

func NewPostListResponse(page *models.PostPage, sort string, pageNumber, limit int) PostListResponse {
	posts := make([]PostResponse, len(page.Posts))
	for i := range page.Posts {
		posts[i] = NewPostResponse(&page.Posts[i], page.LikedIDs[page.Posts[i].ID])
	}
	return PostListResponse{
		Posts:      posts,
		Sort:       sort,
		Pagination: NewPaginationMeta(pageNumber, limit, page.Total),
	}
}
