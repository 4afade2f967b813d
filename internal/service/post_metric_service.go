package service

import (
	"context"
	log "log/slog"
	"strconv"
	"time"

	"newsfeed/internal/api/dto"
	"newsfeed/internal/model"
	"newsfeed/internal/pkg/util"
	"newsfeed/internal/repository"
)

type PostMetricService interface {
	// SyncPostMetric 同步帖子每日指标快照
	SyncPostMetric(ctx context.Context, post *model.Post) error
	// GetPostMetricsBy7Days 获取最近7天全维度趋势数据
	GetPostMetricsBy7Days(ctx context.Context, postID uint64) (*dto.PostTrendDTO, error)
	// GetPostMetricsBy30Days 获取最近30天全维度趋势数据
	GetPostMetricsBy30Days(ctx context.Context, postID uint64) (*dto.PostTrendDTO, error)
}

type postMetricServiceImpl struct {
	postMetricRepo repository.PostMetricRepo
	postRepo       repository.PostRepo
	now            func() time.Time
}

func NewPostMetricService(postMetricRepo repository.PostMetricRepo, postRepo repository.PostRepo) PostMetricService {
	return &postMetricServiceImpl{
		postMetricRepo: postMetricRepo,
		postRepo:       postRepo,
		now:            time.Now,
	}
}

// SyncPostMetric 实现：将 posts 表的实时计数刷入每日指标表
func (s *postMetricServiceImpl) SyncPostMetric(ctx context.Context, post *model.Post) error {
	metric := &model.PostMetric{
		PostID:        post.ID,
		MetricDate:    util.GetMidnight(s.now()),
		TotalLikes:    post.LikesCount,
		TotalComments: post.CommentsCount,
		TotalViews:    post.Views,
	}
	return s.postMetricRepo.SaveOrUpdateMetric(ctx, metric)
}

func (s *postMetricServiceImpl) GetPostMetricsBy7Days(ctx context.Context, postID uint64) (*dto.PostTrendDTO, error) {
	return s.getPostMetrics(ctx, postID, 7)
}

func (s *postMetricServiceImpl) GetPostMetricsBy30Days(ctx context.Context, postID uint64) (*dto.PostTrendDTO, error) {
	return s.getPostMetrics(ctx, postID, 30)
}

// getPostMetrics 聚合查询与数据平滑逻辑，缺失的日期沿用上一条快照
func (s *postMetricServiceImpl) getPostMetrics(ctx context.Context, postID uint64, days int) (*dto.PostTrendDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "Error fetching post", "id", postID, "err", err)
		return nil, &OperationError{Message: "Failed to fetch post"}
	}
	if post == nil {
		return nil, &PostNotFoundError{ID: strconv.FormatUint(postID, 10)}
	}

	now := s.now()
	startTime := util.GetMidnight(now).AddDate(0, 0, -days)
	rawData, err := s.postMetricRepo.GetPostMetricsSince(ctx, postID, startTime)
	if err != nil {
		log.ErrorContext(ctx, "Error fetching post metrics", "id", postID, "err", err)
		return nil, &OperationError{Message: "Failed to fetch post metrics"}
	}

	var baseline *model.PostMetric
	if len(rawData) == 0 || !rawData[0].MetricDate.Equal(startTime) {
		baseline, _ = s.postMetricRepo.GetLatestMetricBefore(ctx, postID, startTime)
	} else {
		baseline = rawData[0]
	}

	dataMap := make(map[string]*model.PostMetric)
	for _, m := range rawData {
		dataMap[m.MetricDate.Format(time.DateOnly)] = m
	}

	res := &dto.PostTrendDTO{
		PostID:   postID,
		Days:     days,
		Likes:    make([]*dto.PostMetricDTO, 0, days),
		Comments: make([]*dto.PostMetricDTO, 0, days),
		Views:    make([]*dto.PostMetricDTO, 0, days),
	}

	var lastValid = baseline
	for i := days - 1; i >= 0; i-- {
		currentDate := util.GetMidnight(now.AddDate(0, 0, -i))
		dateStr := currentDate.Format(time.DateOnly)

		l, c, v := 0, 0, 0
		if val, ok := dataMap[dateStr]; ok {
			l, c, v = val.TotalLikes, val.TotalComments, val.TotalViews
			lastValid = val
		} else if lastValid != nil {
			l, c, v = lastValid.TotalLikes, lastValid.TotalComments, lastValid.TotalViews
		}

		res.Likes = append(res.Likes, &dto.PostMetricDTO{Date: dateStr, Value: l})
		res.Comments = append(res.Comments, &dto.PostMetricDTO{Date: dateStr, Value: c})
		res.Views = append(res.Views, &dto.PostMetricDTO{Date: dateStr, Value: v})
	}

	return res, nil
}
