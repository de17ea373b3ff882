package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetActiveUsers(ctx context.Context) ([]*model.User, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepoImpl{db: db}
}

func (s *userRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

// GetActiveUsers 获取所有启用状态的用户，用于全量同步
func (s *userRepoImpl) GetActiveUsers(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0)
	result := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}
