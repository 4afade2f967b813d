package cron

import (
	"fmt"
	log "log/slog"
)

// InitCron 注册快照任务并启动调度，返回已注册的任务数
func InitCron(mgr *Manager) (int, error) {
	if err := mgr.RegisterJobs(); err != nil {
		return 0, fmt.Errorf("register cron jobs: %w", err)
	}
	entries := mgr.Entries()
	if entries == 0 {
		log.Info("No cron jobs registered, scheduler idle")
	} else {
		log.Info("Cron jobs registered", "entries", entries, "post_metrics", mgr.postMetricSpec)
	}
	mgr.Start()
	return entries, nil
}
