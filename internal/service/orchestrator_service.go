package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"
)

// SyncDispatcher 把同步任务派发到异步队列，返回任务 ID
type SyncDispatcher interface {
	EnqueueSync(ctx context.Context, userID uint64, platform string) (string, error)
}

type OrchestratorService interface {
	// SyncUser 为单个用户的所有已配置平台派发同步任务。
	// 用户级失败（如用户不存在）也返回 status=error 的汇总，而不是抛错
	SyncUser(ctx context.Context, userID uint64) (*dto.SyncUserSummary, error)
	// SyncAllUsers 为所有启用用户派发同步任务
	SyncAllUsers(ctx context.Context) (*dto.SyncAllSummary, error)
}

type orchestratorServiceImpl struct {
	registry   *PlatformRegistry
	userRepo   repository.UserRepo
	dispatcher SyncDispatcher
}

func NewOrchestratorService(registry *PlatformRegistry, userRepo repository.UserRepo, dispatcher SyncDispatcher) OrchestratorService {
	return &orchestratorServiceImpl{
		registry:   registry,
		userRepo:   userRepo,
		dispatcher: dispatcher,
	}
}

// resolvePlatforms 配置了账号名的平台即参与同步，顺序固定。
// 后续账号改为独立关联表后，这里应改为查表
func resolvePlatforms(u *model.User) []string {
	platforms := make([]string, 0, 3)
	if u.InstagramUsername != nil && *u.InstagramUsername != "" {
		platforms = append(platforms, consts.PlatformInstagram)
	}
	if u.FacebookUsername != nil && *u.FacebookUsername != "" {
		platforms = append(platforms, consts.PlatformFacebook)
	}
	if u.TiktokUsername != nil && *u.TiktokUsername != "" {
		platforms = append(platforms, consts.PlatformTiktok)
	}
	return platforms
}

func (s *orchestratorServiceImpl) SyncUser(ctx context.Context, userID uint64) (*dto.SyncUserSummary, error) {
	summary := &dto.SyncUserSummary{
		UserID:    userID,
		Platforms: make([]string, 0),
		Results:   make(map[string]*dto.SyncPlatformResult),
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		log.ErrorContext(ctx, "User not found", "user_id", userID)
		summary.Status = dto.SyncStatusError
		summary.Error = ErrUserNotFound.Error()
		return summary, nil
	}

	summary.Platforms = resolvePlatforms(user)

	// 单个平台派发失败不影响其余平台
	for _, name := range summary.Platforms {
		if _, ok := s.registry.Get(name); !ok {
			log.WarnContext(ctx, "No sync handler registered for platform", "user_id", userID, "platform", name)
			summary.Results[name] = &dto.SyncPlatformResult{
				Status:  dto.PlatformStatusSkipped,
				Message: ErrPlatformNotSupported.Error(),
			}
			continue
		}

		taskID, err := s.dispatcher.EnqueueSync(ctx, userID, name)
		if err != nil {
			log.ErrorContext(ctx, "Enqueue sync failed", "user_id", userID, "platform", name, "err", err)
			summary.Results[name] = &dto.SyncPlatformResult{
				Status:  dto.PlatformStatusError,
				Message: err.Error(),
			}
			continue
		}

		summary.Results[name] = &dto.SyncPlatformResult{
			Status: dto.PlatformStatusQueued,
			TaskID: taskID,
		}
	}

	summary.Status = summarizePlatforms(summary.Results)
	return summary, nil
}

func (s *orchestratorServiceImpl) SyncAllUsers(ctx context.Context) (*dto.SyncAllSummary, error) {
	users, err := s.userRepo.GetActiveUsers(ctx)
	if err != nil {
		return nil, err
	}

	all := &dto.SyncAllSummary{
		TotalUsers: len(users),
		Results:    make(map[uint64]*dto.SyncUserSummary),
	}

	// 单个用户失败不影响其余用户
	allOk := true
	for _, user := range users {
		summary, err := s.SyncUser(ctx, user.ID)
		if err != nil {
			log.ErrorContext(ctx, "Sync user failed", "user_id", user.ID, "err", err)
			summary = &dto.SyncUserSummary{
				UserID:    user.ID,
				Platforms: make([]string, 0),
				Results:   make(map[string]*dto.SyncPlatformResult),
				Status:    dto.SyncStatusError,
				Error:     err.Error(),
			}
		}
		if summary.Status != dto.SyncStatusOk {
			allOk = false
		}
		all.Results[user.ID] = summary
	}

	if allOk {
		all.Status = dto.SyncStatusOk
	} else {
		all.Status = dto.SyncStatusPartialError
	}
	return all, nil
}

// summarizePlatforms 全部成功入队才算 ok，出现 skipped 或派发失败都归为 partial_error；
// 没有任何已配置平台时视为 ok
func summarizePlatforms(results map[string]*dto.SyncPlatformResult) string {
	for _, r := range results {
		if r.Status != dto.PlatformStatusQueued {
			return dto.SyncStatusPartialError
		}
	}
	return dto.SyncStatusOk
}
