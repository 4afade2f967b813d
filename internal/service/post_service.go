package service

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"newsfeed/internal/api/dto"
	"newsfeed/internal/model"
	"newsfeed/internal/pkg/consts"
	"newsfeed/internal/pkg/util"
	"newsfeed/internal/repository"
)

type PostService interface {
	ListPosts(ctx context.Context, limit, offset *int) ([]*dto.PostDTO, error)
	GetPost(ctx context.Context, id string) (*dto.PostDTO, error)
	CountPosts(ctx context.Context) (int, error)
	CreatePost(ctx context.Context, postDTO *dto.CreatePostDTO) (*dto.PostDTO, error)
	LikePost(ctx context.Context, id string) (*dto.PostDTO, error)
	UnlikePost(ctx context.Context, id string) (*dto.PostDTO, error)
	IncrementViews(ctx context.Context, id string) (*dto.PostDTO, error)
	ToggleBookmark(ctx context.Context, id string) (*dto.PostDTO, error)
	// DeletePost 只校验存在性，不执行删除
	DeletePost(ctx context.Context, id string) (bool, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	now      func() time.Time
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		now:      time.Now,
	}
}

func (s *postServiceImpl) ListPosts(ctx context.Context, limit, offset *int) ([]*dto.PostDTO, error) {
	l, o := consts.DefaultPageSize, 0
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}
	log.InfoContext(ctx, "Fetching posts", "limit", l, "offset", o)

	posts, err := s.postRepo.ListPosts(ctx, l, o)
	if err != nil {
		log.ErrorContext(ctx, "Error fetching posts", "err", err)
		return nil, &OperationError{Message: "Failed to fetch posts"}
	}

	log.InfoContext(ctx, "Found posts", "count", len(posts))
	return ToPostDTOs(posts, s.now()), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id string) (*dto.PostDTO, error) {
	log.InfoContext(ctx, "Fetching post", "id", id)

	post, err := s.findPost(ctx, id)
	if err != nil {
		if !errors.As(err, new(*PostNotFoundError)) {
			log.ErrorContext(ctx, "Error fetching post", "id", id, "err", err)
			return nil, &OperationError{Message: "Failed to fetch post"}
		}
		return nil, err
	}

	log.InfoContext(ctx, "Found post", "id", post.ID, "title", post.Title)
	return ToPostDTO(post, s.now()), nil
}

func (s *postServiceImpl) CountPosts(ctx context.Context) (int, error) {
	log.InfoContext(ctx, "Counting total posts")

	count, err := s.postRepo.CountPosts(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Error counting posts", "err", err)
		return 0, &OperationError{Message: "Failed to count posts"}
	}

	log.InfoContext(ctx, "Total posts", "count", count)
	return int(count), nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, postDTO *dto.CreatePostDTO) (*dto.PostDTO, error) {
	authorName := util.StringOr(postDTO.AuthorName, util.DefaultAuthorName)
	log.InfoContext(ctx, "Creating new post", "title", postDTO.Title, "author", authorName)

	if err := validateCreatePost(postDTO); err != nil {
		log.WarnContext(ctx, "Create post rejected", "field", err.Field, "reason", err.Message)
		return nil, err
	}

	username := util.StringOr(postDTO.AuthorUsername, "")
	if username == "" {
		username = util.Username(authorName)
	}
	tags := postDTO.Tags
	if tags == nil {
		tags = []string{}
	}

	post, err := s.postRepo.CreatePost(ctx,
		strings.TrimSpace(postDTO.Title),
		strings.TrimSpace(postDTO.Body),
		authorName,
		username,
		tags,
	)
	if err != nil || post == nil {
		log.ErrorContext(ctx, "Error creating post", "err", err)
		return nil, &OperationError{Message: "Failed to create post"}
	}

	log.InfoContext(ctx, "Created post", "id", post.ID)
	return ToPostDTO(post, s.now()), nil
}

// validateCreatePost 按顺序校验，返回第一个错误
func validateCreatePost(postDTO *dto.CreatePostDTO) *ValidationError {
	rules := []struct {
		field   string
		value   string
		tag     string
		message string
	}{
		{"title", postDTO.Title, "required,notblank", "Title is required"},
		{"body", postDTO.Body, "required,notblank", "Body is required"},
		{"title", postDTO.Title, "utf16max=" + strconv.Itoa(consts.TitleMaxLength), "Title too long (max 100 characters)"},
		{"body", postDTO.Body, "utf16max=" + strconv.Itoa(consts.BodyMaxLength), "Body too long (max 1000 characters)"},
	}
	for _, r := range rules {
		if err := util.ValidateVar(r.value, r.tag); err != nil {
			return &ValidationError{Field: r.field, Message: r.message}
		}
	}
	return nil
}

func (s *postServiceImpl) LikePost(ctx context.Context, id string) (*dto.PostDTO, error) {
	log.InfoContext(ctx, "Liking post", "id", id)
	post, err := s.mutate(ctx, id, "Failed to like post", s.postRepo.LikePost)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "Post liked", "id", post.ID, "likes", post.LikesCount)
	return ToPostDTO(post, s.now()), nil
}

func (s *postServiceImpl) UnlikePost(ctx context.Context, id string) (*dto.PostDTO, error) {
	log.InfoContext(ctx, "Unliking post", "id", id)
	post, err := s.mutate(ctx, id, "Failed to unlike post", s.postRepo.UnlikePost)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "Post unliked", "id", post.ID, "likes", post.LikesCount)
	return ToPostDTO(post, s.now()), nil
}

func (s *postServiceImpl) IncrementViews(ctx context.Context, id string) (*dto.PostDTO, error) {
	log.InfoContext(ctx, "Incrementing views", "id", id)
	post, err := s.mutate(ctx, id, "Failed to increment views", s.postRepo.IncrementViews)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "Post views incremented", "id", post.ID, "views", post.Views)
	return ToPostDTO(post, s.now()), nil
}

func (s *postServiceImpl) ToggleBookmark(ctx context.Context, id string) (*dto.PostDTO, error) {
	log.InfoContext(ctx, "Toggling bookmark", "id", id)
	post, err := s.mutate(ctx, id, "Failed to toggle bookmark", s.postRepo.ToggleBookmark)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "Post bookmark toggled", "id", post.ID, "bookmarked", post.IsBookmarked)
	return ToPostDTO(post, s.now()), nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, id string) (bool, error) {
	log.InfoContext(ctx, "Deleting post", "id", id)

	_, err := s.findPost(ctx, id)
	if err != nil {
		if !errors.As(err, new(*PostNotFoundError)) {
			log.ErrorContext(ctx, "Error deleting post", "id", id, "err", err)
			return false, &OperationError{Message: "Failed to delete post"}
		}
		return false, err
	}

	log.InfoContext(ctx, "Post deleted", "id", id)
	return true, nil
}

// findPost 解析 ID 并查询，非正整数 ID 视为不存在
func (s *postServiceImpl) findPost(ctx context.Context, id string) (*model.Post, error) {
	pid, ok := parsePostID(id)
	if !ok {
		return nil, &PostNotFoundError{ID: id}
	}
	post, err := s.postRepo.GetPost(ctx, pid)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &PostNotFoundError{ID: id}
	}
	return post, nil
}

// mutate 执行单行更新并回读，回读为空时报告不存在
func (s *postServiceImpl) mutate(
	ctx context.Context,
	id string,
	failure string,
	op func(ctx context.Context, id uint64) (*model.Post, error),
) (*model.Post, error) {
	pid, ok := parsePostID(id)
	if !ok {
		return nil, &PostNotFoundError{ID: id}
	}

	post, err := op(ctx, pid)
	if err != nil {
		log.ErrorContext(ctx, failure, "id", id, "err", err)
		return nil, &OperationError{Message: failure}
	}
	if post == nil {
		return nil, &PostNotFoundError{ID: id}
	}
	return post, nil
}

func parsePostID(id string) (uint64, bool) {
	pid, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
	if err != nil || pid == 0 {
		return 0, false
	}
	return pid, true
}
