package job

import (
	"SocialPulse/internal/pkg/logger"
	"SocialPulse/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// SyncAllJob 每日全量同步，为所有启用用户派发同步任务
type SyncAllJob struct {
	orchestratorSvc service.OrchestratorService
}

func NewSyncAllJob(orchestratorSvc service.OrchestratorService) *SyncAllJob {
	return &SyncAllJob{
		orchestratorSvc: orchestratorSvc,
	}
}

func (s *SyncAllJob) Run() {
	traceID := "job-sync-all-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	summary, err := s.orchestratorSvc.SyncAllUsers(ctx)
	if err != nil {
		log.ErrorContext(ctx, "SyncAllJob failed", "err", err)
		return
	}

	log.InfoContext(ctx, "SyncAllJob finished",
		"total_users", summary.TotalUsers,
		"status", summary.Status,
	)
}
