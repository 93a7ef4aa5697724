package cron

import (
	"Folio/internal/job"
	"fmt"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

// entry 一个已命名的定时任务
type entry struct {
	name string
	spec string
	job  cron.Job
}

type Manager struct {
	engine  *cron.Cron
	entries []entry
}

// NewCronManager 任务执行中不会重复触发，panic 被恢复；spec 为空的任务不注册
func NewCronManager(cleanupSpec string, thumbnailCleanupJob *job.ThumbnailCleanupJob) *Manager {
	logger := cron.PrintfLogger(slogPrintf{})
	mgr := &Manager{
		engine: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}
	if cleanupSpec != "" {
		mgr.entries = append(mgr.entries, entry{name: "thumbnail_cleanup", spec: cleanupSpec, job: thumbnailCleanupJob})
	}
	return mgr
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	for _, e := range s.entries {
		if _, err := s.engine.AddJob(e.spec, e.job); err != nil {
			return fmt.Errorf("register cron job %s (%s): %w", e.name, e.spec, err)
		}
		log.Info("Cron job registered", "job", e.name, "spec", e.spec)
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

// Stop 等待执行中的任务结束
func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}

// slogPrintf cron 内部日志转发到 slog
type slogPrintf struct{}

func (slogPrintf) Printf(format string, args ...interface{}) {
	log.Info(fmt.Sprintf(format, args...), "component", "cron")
}
