package handlers

import (
	stderrors "errors"
	"net/http"

	"walletboard/internal/dto"
	"walletboard/internal/errors"
	"walletboard/internal/models"
	"walletboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PostHandler serves the post feed and likes
type PostHandler struct {
	postService services.PostServiceInterface
}

func NewPostHandler(postService services.PostServiceInterface) *PostHandler {
	return &PostHandler{postService: postService}
}

// ListPosts returns one page of the feed. Unknown sort values fall back to newest.
// GET /posts?sort=newest|likes&page=n
func (h *PostHandler) ListPosts(c echo.Context) error {
	sort := models.PostSortNewest
	if c.QueryParam("sort") == models.PostSortLikes {
		sort = models.PostSortLikes
	}
	page := pageParam(c)

	result, err := h.postService.ListPosts(models.PostFilters{
		Sort:   sort,
		Offset: pageOffset(page, services.PostsPerPage),
		Limit:  services.PostsPerPage,
	}, viewerID(c))
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPostListResponse(result, sort, page, services.PostsPerPage))
}

// CreatePost publishes a post for the authenticated account
// POST /posts
func (h *PostHandler) CreatePost(c echo.Context) error {
	accountID, ok := currentAccount(c)
	if !ok {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	post, err := h.postService.CreatePost(accountID, req.Content, ClientIP(c), c.Request().UserAgent())
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidPost) {
			return SendError(c, errors.PostEmptyContent, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewPostResponse(post, false))
}

// ToggleLike likes the post, or removes the caller's like when already liked
// POST /posts/:id/like
func (h *PostHandler) ToggleLike(c echo.Context) error {
	accountID, ok := currentAccount(c)
	if !ok {
		return SendError(c, errors.AuthMissingToken)
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.PostInvalidID)
	}

	result, err := h.postService.ToggleLike(postID, accountID)
	if err != nil {
		if stderrors.Is(err, services.ErrPostNotFound) {
			return SendError(c, errors.PostNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LikeResponse{
		Success:    true,
		Liked:      result.Liked,
		LikesCount: result.LikesCount,
	})
}
