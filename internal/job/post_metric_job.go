package job

import (
	"context"
	log "log/slog"

	"newsfeed/internal/pkg/logger"
	"newsfeed/internal/repository"
	"newsfeed/internal/service"

	"github.com/google/uuid"
)

const postScanBatchSize = 500

// PostMetricsJob 将所有帖子的当前计数写入当日快照
type PostMetricsJob struct {
	postRepo      repository.PostRepo
	postMetricSvc service.PostMetricService
}

func NewPostMetricsJob(postRepo repository.PostRepo, postMetricSvc service.PostMetricService) *PostMetricsJob {
	return &PostMetricsJob{
		postRepo:      postRepo,
		postMetricSvc: postMetricSvc,
	}
}

// Run implements cron.Job.
func (s *PostMetricsJob) Run() {
	traceID := "job-post-" + uuid.NewString()
	ctx := logger.WithTraceID(context.Background(), traceID)

	synced, err := s.SyncAll(ctx)
	if err != nil {
		log.ErrorContext(ctx, "sync post metrics aborted", "synced", synced, "err", err)
		return
	}
	log.InfoContext(ctx, "sync post metrics success", "post_count", synced)
}

// SyncAll 按主键分批扫描，单条失败只记录日志
func (s *PostMetricsJob) SyncAll(ctx context.Context) (int, error) {
	var lastID uint64
	synced := 0

	for {
		posts, err := s.postRepo.ListPostsAfter(ctx, lastID, postScanBatchSize)
		if err != nil {
			return synced, err
		}
		if len(posts) == 0 {
			return synced, nil
		}

		for _, post := range posts {
			if err = s.postMetricSvc.SyncPostMetric(ctx, post); err != nil {
				log.ErrorContext(ctx, "sync post daily metric error", "pid", post.ID, "err", err)
				continue
			}
			synced++
		}
		lastID = posts[len(posts)-1].ID

		if err = ctx.Err(); err != nil {
			return synced, err
		}
	}
}
