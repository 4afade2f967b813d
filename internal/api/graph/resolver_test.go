package graph

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"newsfeed/internal/api/config"
	"newsfeed/internal/pkg/database"
	"newsfeed/internal/repository"
	"newsfeed/internal/service"

	"github.com/goccy/go-json"
	"github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSchema(t *testing.T) *graphql.Schema {
	t.Helper()
	db, err := database.NewGormDB(&config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "graph.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	schema, err := NewSchema(service.NewPostService(repository.NewPostRepository(db)), 0)
	require.NoError(t, err)
	return schema
}

type gqlPost struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	LikesCount    int      `json:"likesCount"`
	UserLiked     bool     `json:"userLiked"`
	Views         int      `json:"views"`
	Tags          []string `json:"tags"`
	Trending      bool     `json:"trending"`
	IsBookmarked  bool     `json:"isBookmarked"`
	ReadTime      string   `json:"readTime"`
	Timestamp     string   `json:"timestamp"`
	CommentsCount int      `json:"commentsCount"`
	Author        struct {
		Name     string  `json:"name"`
		Username string  `json:"username"`
		Avatar   *string `json:"avatar"`
	} `json:"author"`
}

func exec(t *testing.T, schema *graphql.Schema, query string, vars map[string]interface{}, out interface{}) *graphql.Response {
	t.Helper()
	resp := schema.Exec(context.Background(), query, "", vars)
	if out != nil && len(resp.Errors) == 0 {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp
}

const createMutation = `mutation($title: String!, $body: String!, $tags: [String!]) {
  createPost(title: $title, body: $body, authorName: "John Doe", tags: $tags) {
    id title likesCount userLiked views tags trending readTime timestamp commentsCount
    author { name username avatar }
  }
}`

func createPost(t *testing.T, schema *graphql.Schema, title string) gqlPost {
	t.Helper()
	var out struct {
		CreatePost gqlPost `json:"createPost"`
	}
	resp := exec(t, schema, createMutation, map[string]interface{}{
		"title": title,
		"body":  "hello there",
		"tags":  []interface{}{"a", "b"},
	}, &out)
	require.Empty(t, resp.Errors)
	return out.CreatePost
}

func TestCreatePostMutation(t *testing.T) {
	schema := newTestSchema(t)
	post := createPost(t, schema, "First")

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "First", post.Title)
	assert.Zero(t, post.LikesCount)
	assert.Zero(t, post.Views)
	assert.False(t, post.UserLiked)
	assert.False(t, post.Trending)
	assert.Equal(t, []string{"a", "b"}, post.Tags)
	assert.Equal(t, "1 min", post.ReadTime)
	assert.Equal(t, "a few minutes ago", post.Timestamp)
	assert.Equal(t, "John Doe", post.Author.Name)
	assert.Equal(t, "johndoe", post.Author.Username)
	require.NotNil(t, post.Author.Avatar)
	assert.Equal(t, "https://api.dicebear.com/7.x/initials/svg?seed=John%20Doe", *post.Author.Avatar)
}

func TestCreatePostDefaultAuthor(t *testing.T) {
	schema := newTestSchema(t)

	var out struct {
		CreatePost gqlPost `json:"createPost"`
	}
	resp := exec(t, schema, `mutation { createPost(title: "t", body: "b") { tags author { name username } } }`, nil, &out)
	require.Empty(t, resp.Errors)
	assert.Equal(t, "Anonymous", out.CreatePost.Author.Name)
	assert.Equal(t, "anonymous", out.CreatePost.Author.Username)
	assert.Equal(t, []string{}, out.CreatePost.Tags)
}

func TestCreatePostValidationError(t *testing.T) {
	schema := newTestSchema(t)

	resp := exec(t, schema, `mutation { createPost(title: "", body: "x") { id } }`, nil, nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Title is required", resp.Errors[0].Message)
	assert.Equal(t, "VALIDATION_ERROR", resp.Errors[0].Extensions["code"])
	assert.Equal(t, "title", resp.Errors[0].Extensions["field"])
	assert.NotEmpty(t, resp.Errors[0].Extensions["timestamp"])

	var out struct {
		PostsCount int `json:"postsCount"`
	}
	resp = exec(t, schema, `{ postsCount }`, nil, &out)
	require.Empty(t, resp.Errors)
	assert.Zero(t, out.PostsCount)
}

func TestPostsQueryOrderAndPaging(t *testing.T) {
	schema := newTestSchema(t)
	for _, title := range []string{"one", "two", "three"} {
		createPost(t, schema, title)
	}

	var out struct {
		Posts      []gqlPost `json:"posts"`
		PostsCount int       `json:"postsCount"`
	}
	resp := exec(t, schema, `{ posts(limit: 2, offset: 0) { title } postsCount }`, nil, &out)
	require.Empty(t, resp.Errors)
	require.Len(t, out.Posts, 2)
	assert.Equal(t, "three", out.Posts[0].Title)
	assert.Equal(t, "two", out.Posts[1].Title)
	assert.Equal(t, 3, out.PostsCount)
}

func TestPostsQueryDefaults(t *testing.T) {
	schema := newTestSchema(t)
	for i := 0; i < 12; i++ {
		createPost(t, schema, "post")
	}

	var out struct {
		Posts []gqlPost `json:"posts"`
	}
	resp := exec(t, schema, `{ posts { id } }`, nil, &out)
	require.Empty(t, resp.Errors)
	assert.Len(t, out.Posts, 10)

	resp = exec(t, schema, `{ posts(offset: 10) { id } }`, nil, &out)
	require.Empty(t, resp.Errors)
	assert.Len(t, out.Posts, 2)
}

func TestCreatePostTitleLengthInUTF16(t *testing.T) {
	schema := newTestSchema(t)

	resp := exec(t, schema, `mutation($title: String!) { createPost(title: $title, body: "x") { id } }`,
		map[string]interface{}{"title": strings.Repeat("😀", 60)}, nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Title too long (max 100 characters)", resp.Errors[0].Message)
	assert.Equal(t, "VALIDATION_ERROR", resp.Errors[0].Extensions["code"])
}

func TestSubscriptionChannels(t *testing.T) {
	r := NewResolver(nil)

	_, open := <-r.PostCreated(context.Background())
	assert.False(t, open)

	ctx, cancel := context.WithCancel(context.Background())
	ch := r.PostLiked(ctx, struct{ PostID graphql.ID }{PostID: "1"})
	cancel()
	_, open = <-ch
	assert.False(t, open)
}

func TestPostNotFound(t *testing.T) {
	schema := newTestSchema(t)

	resp := exec(t, schema, `{ post(id: "999") { id } }`, nil, nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Post with ID 999 not found", resp.Errors[0].Message)
	assert.Equal(t, "NOT_FOUND", resp.Errors[0].Extensions["code"])
}

func TestLikeUnlikeMutations(t *testing.T) {
	schema := newTestSchema(t)
	created := createPost(t, schema, "likeable")
	vars := map[string]interface{}{"id": created.ID}

	var liked struct {
		LikePost gqlPost `json:"likePost"`
	}
	resp := exec(t, schema, `mutation($id: ID!) { likePost(id: $id) { likesCount userLiked } }`, vars, &liked)
	require.Empty(t, resp.Errors)
	assert.Equal(t, 1, liked.LikePost.LikesCount)
	assert.True(t, liked.LikePost.UserLiked)

	var got struct {
		Post gqlPost `json:"post"`
	}
	resp = exec(t, schema, `query($id: ID!) { post(id: $id) { likesCount userLiked } }`, vars, &got)
	require.Empty(t, resp.Errors)
	assert.Equal(t, 1, got.Post.LikesCount)

	var unliked struct {
		UnlikePost gqlPost `json:"unlikePost"`
	}
	resp = exec(t, schema, `mutation($id: ID!) { unlikePost(id: $id) { likesCount userLiked } }`, vars, &unliked)
	require.Empty(t, resp.Errors)
	assert.Equal(t, 0, unliked.UnlikePost.LikesCount)
	assert.False(t, unliked.UnlikePost.UserLiked)
}

func TestViewsBookmarkDelete(t *testing.T) {
	schema := newTestSchema(t)
	created := createPost(t, schema, "counted")
	vars := map[string]interface{}{"id": created.ID}

	var out struct {
		IncrementViews gqlPost `json:"incrementViews"`
		ToggleBookmark gqlPost `json:"toggleBookmark"`
		DeletePost     bool    `json:"deletePost"`
	}
	resp := exec(t, schema, `mutation($id: ID!) {
  incrementViews(id: $id) { views }
  toggleBookmark(id: $id) { isBookmarked }
  deletePost(id: $id)
}`, vars, &out)
	require.Empty(t, resp.Errors)
	assert.Equal(t, 1, out.IncrementViews.Views)
	assert.True(t, out.ToggleBookmark.IsBookmarked)
	assert.True(t, out.DeletePost)

	var count struct {
		PostsCount int `json:"postsCount"`
	}
	exec(t, schema, `{ postsCount }`, nil, &count)
	assert.Equal(t, 1, count.PostsCount)
}

func TestLikeMissingPost(t *testing.T) {
	schema := newTestSchema(t)

	resp := exec(t, schema, `mutation { likePost(id: "31337") { id } }`, nil, nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "NOT_FOUND", resp.Errors[0].Extensions["code"])
}

func TestMaxDepth(t *testing.T) {
	db, err := database.NewGormDB(&config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "depth.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	schema, err := NewSchema(service.NewPostService(repository.NewPostRepository(db)), 2)
	require.NoError(t, err)

	resp := schema.Exec(context.Background(), `{ posts { author { name } } }`, "", nil)
	assert.NotEmpty(t, resp.Errors)

	resp = schema.Exec(context.Background(), `{ posts { title } }`, "", nil)
	assert.Empty(t, resp.Errors)
}
