package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyMetricRepo interface {
	Upsert(ctx context.Context, metric *model.DailyMetric) (*model.DailyMetric, error)
	GetByDate(ctx context.Context, profileID uint64, date time.Time) (*model.DailyMetric, error)
	GetMetricsBy7Days(ctx context.Context, profileID uint64) ([]*model.DailyMetric, error)
	GetMetricsBy30Days(ctx context.Context, profileID uint64) ([]*model.DailyMetric, error)
}

type dailyMetricRepoImpl struct {
	db *gorm.DB
}

func NewDailyMetricRepo(db *gorm.DB) DailyMetricRepo {
	return &dailyMetricRepoImpl{db: db}
}

// Upsert 采用 Upsert 逻辑。如果 social_profile_id + metric_date 已存在，则更新各项数值
func (r *dailyMetricRepoImpl) Upsert(ctx context.Context, metric *model.DailyMetric) (*model.DailyMetric, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "social_profile_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"followers",
			"engagement",
			"posts",
			"likes",
			"comments",
			"shares",
			"views",
			"updated_at",
		}),
	}).Create(metric).Error
	if err != nil {
		return nil, err
	}
	return r.GetByDate(ctx, metric.SocialProfileID, metric.MetricDate)
}

func (r *dailyMetricRepoImpl) GetByDate(ctx context.Context, profileID uint64, date time.Time) (*model.DailyMetric, error) {
	var metric model.DailyMetric
	err := r.db.WithContext(ctx).
		Where("social_profile_id = ? AND metric_date = ?", profileID, date).
		First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}

// GetMetricsBy7Days 获取主页最近 7 天的趋势数据
func (r *dailyMetricRepoImpl) GetMetricsBy7Days(ctx context.Context, profileID uint64) ([]*model.DailyMetric, error) {
	return r.getMetricsSince(ctx, profileID, 7)
}

// GetMetricsBy30Days 获取主页最近 30 天的趋势数据
func (r *dailyMetricRepoImpl) GetMetricsBy30Days(ctx context.Context, profileID uint64) ([]*model.DailyMetric, error) {
	return r.getMetricsSince(ctx, profileID, 30)
}

func (r *dailyMetricRepoImpl) getMetricsSince(ctx context.Context, profileID uint64, days int) ([]*model.DailyMetric, error) {
	metrics := make([]*model.DailyMetric, 0)
	result := r.db.WithContext(ctx).
		Where("social_profile_id = ?", profileID).
		Where("metric_date >= ?", time.Now().AddDate(0, 0, -days)).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
