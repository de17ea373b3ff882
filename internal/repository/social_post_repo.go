package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SocialPostRepo interface {
	Upsert(ctx context.Context, post *model.SocialPost) (*model.SocialPost, error)
	GetByPostId(ctx context.Context, postID string) (*model.SocialPost, error)
}

type socialPostRepoImpl struct {
	db *gorm.DB
}

func NewSocialPostRepo(db *gorm.DB) SocialPostRepo {
	return &socialPostRepoImpl{db: db}
}

// Upsert 以平台侧 post_id 为键。重复同步时计数可能变化，原地覆盖
func (s *socialPostRepoImpl) Upsert(ctx context.Context, post *model.SocialPost) (*model.SocialPost, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "post_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"content",
			"post_url",
			"media_url",
			"posted_at",
			"content_type",
			"likes_count",
			"comments_count",
			"shares_count",
			"views_count",
			"engagement_rate",
			"updated_at",
		}),
	}).Create(post).Error
	if err != nil {
		return nil, err
	}
	return s.GetByPostId(ctx, post.PostID)
}

func (s *socialPostRepoImpl) GetByPostId(ctx context.Context, postID string) (*model.SocialPost, error) {
	post := &model.SocialPost{}
	result := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		First(post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}
