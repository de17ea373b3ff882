package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyEngagementRepo interface {
	Upsert(ctx context.Context, engagement *model.DailyEngagement) (*model.DailyEngagement, error)
	GetByDate(ctx context.Context, profileID uint64, date time.Time) (*model.DailyEngagement, error)
}

type dailyEngagementRepoImpl struct {
	db *gorm.DB
}

func NewDailyEngagementRepo(db *gorm.DB) DailyEngagementRepo {
	return &dailyEngagementRepoImpl{db: db}
}

func (r *dailyEngagementRepoImpl) Upsert(ctx context.Context, engagement *model.DailyEngagement) (*model.DailyEngagement, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "social_profile_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"posts_count",
			"avg_likes_per_post",
			"avg_comments_per_post",
			"avg_shares_per_post",
			"engagement_rate",
			"total_likes",
			"total_comments",
			"total_shares",
			"video_views",
			"updated_at",
		}),
	}).Create(engagement).Error
	if err != nil {
		return nil, err
	}
	return r.GetByDate(ctx, engagement.SocialProfileID, engagement.MetricDate)
}

func (r *dailyEngagementRepoImpl) GetByDate(ctx context.Context, profileID uint64, date time.Time) (*model.DailyEngagement, error) {
	var engagement model.DailyEngagement
	err := r.db.WithContext(ctx).
		Where("social_profile_id = ? AND metric_date = ?", profileID, date).
		First(&engagement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &engagement, nil
}
