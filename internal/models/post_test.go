package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_Validate(t *testing.T) {
	authorID := uuid.New()

	tests := []struct {
		name    string
		post    Post
		wantErr error
		errMsg  string
	}{
		{name: "valid post", post: Post{AuthorID: authorID, Content: "gm"}},
		{name: "missing author", post: Post{Content: "gm"}, errMsg: "author is required"},
		{name: "empty content", post: Post{AuthorID: authorID}, wantErr: ErrEmptyPostContent},
		{name: "whitespace content", post: Post{AuthorID: authorID, Content: " \n\t"}, wantErr: ErrEmptyPostContent},
		{
			name:   "content too long",
			post:   Post{AuthorID: authorID, Content: strings.Repeat("a", MaxPostContentLength+1)},
			errMsg: "at most 5000",
		},
		{name: "negative likes", post: Post{AuthorID: authorID, Content: "gm", LikesCount: -1}, errMsg: "cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestPost_BeforeCreate(t *testing.T) {
	post := &Post{AuthorID: uuid.New(), Content: "first"}
	require.NoError(t, post.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)

	assert.ErrorIs(t, (&Post{AuthorID: uuid.New()}).BeforeCreate(nil), ErrEmptyPostContent)
}

func TestPostLike_BeforeCreate(t *testing.T) {
	like := &PostLike{AccountID: uuid.New(), PostID: uuid.New()}
	require.NoError(t, like.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, like.ID)
	assert.False(t, like.CreatedAt.IsZero())
}

func TestIsValidPostSort(t *testing.T) {
	assert.True(t, IsValidPostSort(PostSortNewest))
	assert.True(t, IsValidPostSort(PostSortLikes))
	assert.False(t, IsValidPostSort(""))
	assert.False(t, IsValidPostSort("Likes"))
	assert.False(t, IsValidPostSort("oldest"))
}
