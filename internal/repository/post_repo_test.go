package repository

import (
	"context"
	"strings"
	"testing"

	"newsfeed/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepoCreatePost(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	post, err := repo.CreatePost(ctx, "Hello", "one two three", "John Doe", "johndoe", []string{"a", "b"})
	require.NoError(t, err)
	require.NotNil(t, post)

	assert.Positive(t, post.ID)
	assert.Zero(t, post.LikesCount)
	assert.Zero(t, post.Views)
	assert.False(t, post.UserLiked)
	assert.False(t, post.IsBookmarked)
	assert.False(t, post.Trending)
	assert.Equal(t, "1 min", post.ReadTime)
	assert.Equal(t, model.Tags{"a", "b"}, post.Tags)
	assert.GreaterOrEqual(t, post.CommentsCount, 0)
	assert.Less(t, post.CommentsCount, 10)
	require.NotNil(t, post.AuthorAvatar)
	assert.Equal(t, "https://api.dicebear.com/7.x/initials/svg?seed=John%20Doe", *post.AuthorAvatar)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestPostRepoCreatePostTrending(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	tests := []struct {
		name string
		body string
		tags []string
		want bool
	}{
		{"long body", strings.Repeat("a", 201), nil, true},
		{"keyword tag", strings.Repeat("a", 50), []string{"trending"}, true},
		{"plain", strings.Repeat("a", 50), []string{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := repo.CreatePost(ctx, "t", tt.body, "Anonymous", "anonymous", tt.tags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, post.Trending)
			assert.NotNil(t, post.Tags)
		})
	}
}

func TestPostRepoListAndCount(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.CreatePost(ctx, title, "body", "Anonymous", "anonymous", nil)
		require.NoError(t, err)
	}

	posts, err := repo.ListPosts(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "third", posts[0].Title)
	assert.Equal(t, "second", posts[1].Title)

	posts, err = repo.ListPosts(ctx, 10, 2)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "first", posts[0].Title)

	count, err := repo.CountPosts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	after, err := repo.ListPostsAfter(ctx, posts[0].ID, 10)
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, "second", after[0].Title)
}

func TestPostRepoGetPostMissing(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))

	post, err := repo.GetPost(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, post)
}

func TestPostRepoLikeUnlike(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.CreatePost(ctx, "t", "b", "Anonymous", "anonymous", nil)
	require.NoError(t, err)

	liked, err := repo.LikePost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikesCount)
	assert.True(t, liked.UserLiked)

	unliked, err := repo.UnlikePost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.LikesCount)
	assert.False(t, unliked.UserLiked)

	// no floor on the counter
	unliked, err = repo.UnlikePost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, unliked.LikesCount)
}

func TestPostRepoViewsAndBookmark(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.CreatePost(ctx, "t", "b", "Anonymous", "anonymous", nil)
	require.NoError(t, err)

	viewed, err := repo.IncrementViews(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, viewed.Views)

	marked, err := repo.ToggleBookmark(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, marked.IsBookmarked)

	marked, err = repo.ToggleBookmark(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, marked.IsBookmarked)
}

func TestPostRepoUpdateMissingRow(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))

	post, err := repo.LikePost(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, post)
}

func TestPostRepoMalformedTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	created, err := repo.CreatePost(ctx, "t", "b", "Anonymous", "anonymous", []string{"x"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("UPDATE posts SET tags = ? WHERE id = ?", "{broken", created.ID).Error)

	post, err := repo.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Tags{}, post.Tags)
}
