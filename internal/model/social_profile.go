package model

import (
	"time"
)

// SocialProfile 用户在单个平台上的账号快照，每次同步原地覆盖
type SocialProfile struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	UserID         uint64    `gorm:"not null;index:idx_user_platform,unique" json:"user_id"`
	Platform       string    `gorm:"type:varchar(20);not null;index:idx_user_platform,unique" json:"platform"`
	Username       string    `gorm:"type:varchar(80);not null" json:"username"`
	FullName       string    `gorm:"type:varchar(100)" json:"full_name"`
	ProfileURL     string    `gorm:"type:varchar(1024)" json:"profile_url"`
	AvatarURL      string    `gorm:"type:text" json:"avatar_url"`
	Bio            string    `gorm:"type:text" json:"bio"`
	FollowersCount int       `gorm:"not null;default:0" json:"followers_count"`
	FollowingCount int       `gorm:"not null;default:0" json:"following_count"`
	PostsCount     int       `gorm:"not null;default:0" json:"posts_count"`
	EngagementRate float64   `gorm:"not null;default:0" json:"engagement_rate"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (SocialProfile) TableName() string {
	return "social_profiles"
}
