package repository

import (
	"context"
	"errors"
	"math/rand"

	"newsfeed/internal/model"
	"newsfeed/internal/pkg/util"

	"gorm.io/gorm"
)

type PostRepo interface {
	ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, error)
	ListPostsAfter(ctx context.Context, lastID uint64, size int) ([]*model.Post, error)
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	CountPosts(ctx context.Context) (int64, error)
	CreatePost(ctx context.Context, title, body, authorName, authorUsername string, tags []string) (*model.Post, error)
	LikePost(ctx context.Context, id uint64) (*model.Post, error)
	UnlikePost(ctx context.Context, id uint64) (*model.Post, error)
	IncrementViews(ctx context.Context, id uint64) (*model.Post, error)
	ToggleBookmark(ctx context.Context, id uint64) (*model.Post, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// ListPosts 按创建时间倒序分页，limit 不做上限检查
func (s PostRepoImpl) ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPostsAfter 基于主键的游标扫描
func (s PostRepoImpl) ListPostsAfter(ctx context.Context, lastID uint64, size int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, size)
	err := s.db.WithContext(ctx).
		Where("id > ?", lastID).
		Order("id ASC").
		Limit(size).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost 不存在时返回 nil, nil
func (s PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Count(&count).Error
	return count, err
}

func (s PostRepoImpl) CreatePost(ctx context.Context, title, body, authorName, authorUsername string, tags []string) (*model.Post, error) {
	avatar := util.AvatarURL(authorName)
	if tags == nil {
		tags = []string{}
	}
	post := &model.Post{
		Title:          title,
		Body:           body,
		AuthorName:     authorName,
		AuthorUsername: authorUsername,
		AuthorAvatar:   &avatar,
		CommentsCount:  rand.Intn(10),
		ReadTime:       util.ReadTime(body),
		Tags:           tags,
		Trending:       util.IsTrending(body, tags),
	}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return s.GetPost(ctx, post.ID)
}

// LikePost 单条语句完成计数与点赞标记，不防重复点赞
func (s PostRepoImpl) LikePost(ctx context.Context, id uint64) (*model.Post, error) {
	return s.updateAndGet(ctx, id, map[string]any{
		"likes_count": gorm.Expr("likes_count + ?", 1),
		"user_liked":  true,
	})
}

// UnlikePost 计数可以变为负数
func (s PostRepoImpl) UnlikePost(ctx context.Context, id uint64) (*model.Post, error) {
	return s.updateAndGet(ctx, id, map[string]any{
		"likes_count": gorm.Expr("likes_count - ?", 1),
		"user_liked":  false,
	})
}

func (s PostRepoImpl) IncrementViews(ctx context.Context, id uint64) (*model.Post, error) {
	return s.updateAndGet(ctx, id, map[string]any{
		"views": gorm.Expr("views + ?", 1),
	})
}

func (s PostRepoImpl) ToggleBookmark(ctx context.Context, id uint64) (*model.Post, error) {
	return s.updateAndGet(ctx, id, map[string]any{
		"is_bookmarked": gorm.Expr("NOT is_bookmarked"),
	})
}

// updateAndGet 更新后回读，行不存在时回读结果为 nil
func (s PostRepoImpl) updateAndGet(ctx context.Context, id uint64, values map[string]any) (*model.Post, error) {
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Updates(values).Error
	if err != nil {
		return nil, err
	}
	return s.GetPost(ctx, id)
}
