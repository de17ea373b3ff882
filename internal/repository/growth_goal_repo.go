package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GrowthGoalRepo interface {
	Upsert(ctx context.Context, goal *model.GrowthGoal) (*model.GrowthGoal, error)
	GetByUserAndPlatform(ctx context.Context, userID uint64, platform string) (*model.GrowthGoal, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.GrowthGoal, error)
	Delete(ctx context.Context, userID uint64, platform string) (int64, error)
}

type growthGoalRepoImpl struct {
	db *gorm.DB
}

func NewGrowthGoalRepo(db *gorm.DB) GrowthGoalRepo {
	return &growthGoalRepoImpl{db: db}
}

// Upsert 每个 (user_id, platform) 只保留一条目标，重复设置覆盖
func (r *growthGoalRepoImpl) Upsert(ctx context.Context, goal *model.GrowthGoal) (*model.GrowthGoal, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"followers_goal",
			"engagement_goal",
			"deadline",
			"updated_at",
		}),
	}).Create(goal).Error
	if err != nil {
		return nil, err
	}
	return r.GetByUserAndPlatform(ctx, goal.UserID, goal.Platform)
}

func (r *growthGoalRepoImpl) GetByUserAndPlatform(ctx context.Context, userID uint64, platform string) (*model.GrowthGoal, error) {
	var goal model.GrowthGoal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", userID, platform).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *growthGoalRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.GrowthGoal, error) {
	goals := make([]*model.GrowthGoal, 0)
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("platform ASC").
		Find(&goals)
	if result.Error != nil {
		return nil, result.Error
	}
	return goals, nil
}

func (r *growthGoalRepoImpl) Delete(ctx context.Context, userID uint64, platform string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", userID, platform).
		Delete(&model.GrowthGoal{})
	return result.RowsAffected, result.Error
}
