package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SocialProfileRepo interface {
	Upsert(ctx context.Context, profile *model.SocialProfile) (*model.SocialProfile, error)
	GetById(ctx context.Context, id uint64) (*model.SocialProfile, error)
	GetByUserAndPlatform(ctx context.Context, userID uint64, platform string) (*model.SocialProfile, error)
	UpdateEngagementRate(ctx context.Context, id uint64, rate float64) error
}

type socialProfileRepoImpl struct {
	db *gorm.DB
}

func NewSocialProfileRepo(db *gorm.DB) SocialProfileRepo {
	return &socialProfileRepoImpl{db: db}
}

// Upsert 以 (user_id, platform) 为键写入快照。已存在则只覆盖快照字段，
// 依赖唯一索引保证并发同步不会写出重复行
func (s *socialProfileRepoImpl) Upsert(ctx context.Context, profile *model.SocialProfile) (*model.SocialProfile, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username",
			"full_name",
			"profile_url",
			"avatar_url",
			"bio",
			"followers_count",
			"following_count",
			"posts_count",
			"updated_at",
		}),
	}).Create(profile).Error
	if err != nil {
		return nil, err
	}
	return s.GetByUserAndPlatform(ctx, profile.UserID, profile.Platform)
}

func (s *socialProfileRepoImpl) GetById(ctx context.Context, id uint64) (*model.SocialProfile, error) {
	profile := &model.SocialProfile{}
	result := s.db.WithContext(ctx).First(profile, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profile, nil
}

func (s *socialProfileRepoImpl) GetByUserAndPlatform(ctx context.Context, userID uint64, platform string) (*model.SocialProfile, error) {
	profile := &model.SocialProfile{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", userID, platform).
		First(profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profile, nil
}

// UpdateEngagementRate 同步计算完成后回写主页级互动率（反映最近一次同步，不做滚动平均）
func (s *socialProfileRepoImpl) UpdateEngagementRate(ctx context.Context, id uint64, rate float64) error {
	return s.db.WithContext(ctx).
		Model(&model.SocialProfile{}).
		Where("id = ?", id).
		Update("engagement_rate", rate).Error
}
