package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyGrowthRepo interface {
	Upsert(ctx context.Context, growth *model.DailyGrowth) (*model.DailyGrowth, error)
	GetByDate(ctx context.Context, profileID uint64, date time.Time) (*model.DailyGrowth, error)
}

type dailyGrowthRepoImpl struct {
	db *gorm.DB
}

func NewDailyGrowthRepo(db *gorm.DB) DailyGrowthRepo {
	return &dailyGrowthRepoImpl{db: db}
}

func (r *dailyGrowthRepoImpl) Upsert(ctx context.Context, growth *model.DailyGrowth) (*model.DailyGrowth, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "social_profile_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"followers_count",
			"new_followers_daily",
			"daily_growth_rate",
			"projected_followers_30d",
			"projected_followers_90d",
			"updated_at",
		}),
	}).Create(growth).Error
	if err != nil {
		return nil, err
	}
	return r.GetByDate(ctx, growth.SocialProfileID, growth.MetricDate)
}

// GetByDate 查某天的涨粉记录，计算日环比时取昨天的行
func (r *dailyGrowthRepoImpl) GetByDate(ctx context.Context, profileID uint64, date time.Time) (*model.DailyGrowth, error) {
	var growth model.DailyGrowth
	err := r.db.WithContext(ctx).
		Where("social_profile_id = ? AND metric_date = ?", profileID, date).
		First(&growth).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &growth, nil
}
