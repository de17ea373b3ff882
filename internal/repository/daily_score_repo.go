package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyScoreRepo interface {
	Upsert(ctx context.Context, score *model.DailyScore) (*model.DailyScore, error)
	GetByDate(ctx context.Context, profileID uint64, date time.Time) (*model.DailyScore, error)
}

type dailyScoreRepoImpl struct {
	db *gorm.DB
}

func NewDailyScoreRepo(db *gorm.DB) DailyScoreRepo {
	return &dailyScoreRepoImpl{db: db}
}

func (r *dailyScoreRepoImpl) Upsert(ctx context.Context, score *model.DailyScore) (*model.DailyScore, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "social_profile_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"overall_score",
			"engagement_score",
			"reach_score",
			"growth_score",
			"engagement_weight",
			"reach_weight",
			"growth_weight",
			"updated_at",
		}),
	}).Create(score).Error
	if err != nil {
		return nil, err
	}
	return r.GetByDate(ctx, score.SocialProfileID, score.MetricDate)
}

func (r *dailyScoreRepoImpl) GetByDate(ctx context.Context, profileID uint64, date time.Time) (*model.DailyScore, error) {
	var score model.DailyScore
	err := r.db.WithContext(ctx).
		Where("social_profile_id = ? AND metric_date = ?", profileID, date).
		First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &score, nil
}
