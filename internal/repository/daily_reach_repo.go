package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyReachRepo interface {
	Upsert(ctx context.Context, reach *model.DailyReach) (*model.DailyReach, error)
	GetByDate(ctx context.Context, profileID uint64, date time.Time) (*model.DailyReach, error)
}

type dailyReachRepoImpl struct {
	db *gorm.DB
}

func NewDailyReachRepo(db *gorm.DB) DailyReachRepo {
	return &dailyReachRepoImpl{db: db}
}

func (r *dailyReachRepoImpl) Upsert(ctx context.Context, reach *model.DailyReach) (*model.DailyReach, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "social_profile_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"impressions",
			"reach",
			"updated_at",
		}),
	}).Create(reach).Error
	if err != nil {
		return nil, err
	}
	return r.GetByDate(ctx, reach.SocialProfileID, reach.MetricDate)
}

func (r *dailyReachRepoImpl) GetByDate(ctx context.Context, profileID uint64, date time.Time) (*model.DailyReach, error) {
	var reach model.DailyReach
	err := r.db.WithContext(ctx).
		Where("social_profile_id = ? AND metric_date = ?", profileID, date).
		First(&reach).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reach, nil
}
