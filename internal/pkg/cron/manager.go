package cron

import (
	log "log/slog"

	"newsfeed/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	postMetricSpec string
	postMetricsJob *job.PostMetricsJob
}

// NewCronManager 创建任务管理器，postMetricSpec 为空时不注册快照任务
func NewCronManager(postMetricSpec string, postMetricsJob *job.PostMetricsJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		postMetricSpec: postMetricSpec,
		postMetricsJob: postMetricsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if s.postMetricSpec == "" {
		log.Info("post metric job disabled")
		return nil
	}
	if _, err := s.engine.AddJob(s.postMetricSpec, s.postMetricsJob); err != nil {
		return err
	}
	return nil
}

// Entries 已注册的任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

// Stop 停止调度并等待运行中的任务结束
func (s *Manager) Stop() {
	log.Info("Cron engine stopping")
	<-s.engine.Stop().Done()
}
