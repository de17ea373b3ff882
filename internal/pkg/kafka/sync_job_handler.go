package kafka

import (
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/logger"
	"SocialPulse/internal/pkg/redis"
	"SocialPulse/internal/service"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// 单个账号同步上限远小于锁过期时间，锁只防并发不防悬挂
const syncLockExpiration = 5 * time.Minute

// SyncJobHandler 消费同步任务并执行。
// 失败不重试：下一次定时全量同步会覆盖，重复消费也因 Upsert 幂等而无害
type SyncJobHandler struct {
	syncService service.SyncService
}

func NewSyncJobHandler(syncService service.SyncService) *SyncJobHandler {
	return &SyncJobHandler{syncService: syncService}
}

func (s *SyncJobHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("sync job consumer setup")
	return nil
}

func (s *SyncJobHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("sync job consumer cleanup")
	return nil
}

func (s *SyncJobHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			s.handle(session.Context(), msg)
			session.MarkMessage(msg, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (s *SyncJobHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) {
	var job SyncJobMessage
	if err := json.Unmarshal(msg.Value, &job); err != nil {
		log.Error("unmarshal sync job error", "err", err, "offset", msg.Offset)
		return
	}

	jobCtx := context.WithValue(ctx, logger.TraceIDKey, job.TaskID)

	lockKey := fmt.Sprintf("%s%d:%s", consts.ProfileSyncLock, job.UserID, job.Platform)
	locked, err := redis.TryLock(jobCtx, lockKey, job.TaskID, syncLockExpiration, 1)
	if err != nil {
		log.ErrorContext(jobCtx, "acquire sync lock error", "err", err, "key", lockKey)
		return
	}
	if !locked {
		log.WarnContext(jobCtx, "sync already in progress, skip",
			"user_id", job.UserID,
			"platform", job.Platform,
		)
		return
	}
	defer redis.UnLock(jobCtx, lockKey, job.TaskID)

	outcome, err := s.syncService.SyncPlatform(jobCtx, job.UserID, job.Platform)
	if err != nil {
		log.ErrorContext(jobCtx, "sync job failed",
			"task_id", job.TaskID,
			"user_id", job.UserID,
			"platform", job.Platform,
			"err", err,
		)
		return
	}

	// 新数据落库后趋势缓存已过期，主动失效
	_ = redis.DeleteKey(jobCtx, fmt.Sprintf("%s%d", consts.ProfileMetrics7DaysKey, outcome.ProfileID))
	_ = redis.DeleteKey(jobCtx, fmt.Sprintf("%s%d", consts.ProfileMetrics30DaysKey, outcome.ProfileID))

	log.InfoContext(jobCtx, "sync job succeeded",
		"task_id", job.TaskID,
		"user_id", job.UserID,
		"platform", job.Platform,
		"profile_id", outcome.ProfileID,
		"posts_synced", outcome.PostsSynced,
	)
}
