package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/model"
	"SocialPulse/internal/repository"
	"context"
	"time"
)

type GrowthGoalService interface {
	SetGoal(ctx context.Context, userID uint64, req *dto.SetGrowthGoalDTO) (*model.GrowthGoal, error)
	ListGoals(ctx context.Context, userID uint64) ([]*model.GrowthGoal, error)
	DeleteGoal(ctx context.Context, userID uint64, platform string) error
}

type growthGoalServiceImpl struct {
	registry *PlatformRegistry
	goalRepo repository.GrowthGoalRepo
}

func NewGrowthGoalService(registry *PlatformRegistry, goalRepo repository.GrowthGoalRepo) GrowthGoalService {
	return &growthGoalServiceImpl{
		registry: registry,
		goalRepo: goalRepo,
	}
}

func (s *growthGoalServiceImpl) SetGoal(ctx context.Context, userID uint64, req *dto.SetGrowthGoalDTO) (*model.GrowthGoal, error) {
	if _, ok := s.registry.Get(req.Platform); !ok {
		return nil, ErrPlatformNotSupported
	}
	if req.FollowersGoal == nil && req.EngagementGoal == nil {
		return nil, ErrParamInvalid
	}

	var deadline *time.Time
	if req.Deadline != nil && *req.Deadline != "" {
		t, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return nil, ErrParamInvalid
		}
		deadline = &t
	}

	return s.goalRepo.Upsert(ctx, &model.GrowthGoal{
		UserID:         userID,
		Platform:       req.Platform,
		FollowersGoal:  req.FollowersGoal,
		EngagementGoal: req.EngagementGoal,
		Deadline:       deadline,
	})
}

func (s *growthGoalServiceImpl) ListGoals(ctx context.Context, userID uint64) ([]*model.GrowthGoal, error) {
	return s.goalRepo.ListByUser(ctx, userID)
}

func (s *growthGoalServiceImpl) DeleteGoal(ctx context.Context, userID uint64, platform string) error {
	if _, ok := s.registry.Get(platform); !ok {
		return ErrPlatformNotSupported
	}
	rows, err := s.goalRepo.Delete(ctx, userID, platform)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}
