package cron

import log "log/slog"

// InitCron 注册并启动定时任务，没有任务时不启动引擎
func InitCron(mgr *Manager) error {
	if len(mgr.entries) == 0 {
		log.Warn("No cron jobs configured, engine not started")
		return nil
	}
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()

	for _, e := range mgr.engine.Entries() {
		log.Info("Cron job scheduled", "entry", int(e.ID), "next", e.Next)
	}
	return nil
}
