package job

import (
	"Folio/internal/service"
	"context"
	log "log/slog"
	"time"
)

// ThumbnailCleanupJob 清理超时未被文章引用的封面图
type ThumbnailCleanupJob struct {
	mediaSvc service.MediaService
	ttl      time.Duration
	timeout  time.Duration
}

func NewThumbnailCleanupJob(mediaSvc service.MediaService, ttl time.Duration) *ThumbnailCleanupJob {
	return &ThumbnailCleanupJob{
		mediaSvc: mediaSvc,
		ttl:      ttl,
		timeout:  5 * time.Minute,
	}
}

func (s *ThumbnailCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	log.Info("start thumbnail cleanup job")
	count, err := s.mediaSvc.CleanupExpired(ctx, s.ttl)
	if err != nil {
		log.Error("thumbnail cleanup job failed", "cleaned_count", count, "err", err)
		return
	}
	if count > 0 {
		log.Info("thumbnail cleanup job finished", "cleaned_count", count)
	}
}
