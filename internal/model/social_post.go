package model

import (
	"time"
)

// SocialPost 抓取到的单条帖子，post_id 为平台侧全局唯一标识
type SocialPost struct {
	ID              uint64     `gorm:"primaryKey" json:"id"`
	PostID          string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_post_id" json:"post_id"`
	SocialProfileID uint64     `gorm:"not null;index:idx_profile_id" json:"social_profile_id"`
	Platform        string     `gorm:"type:varchar(20);not null;index" json:"platform"`
	Content         string     `gorm:"type:text" json:"content"`
	PostURL         string     `gorm:"type:text" json:"post_url"`
	MediaURL        string     `gorm:"type:text" json:"media_url"`
	PostedAt        *time.Time `gorm:"index" json:"posted_at"`
	ContentType     string     `gorm:"type:varchar(20)" json:"content_type"` // image / video / text / carousel
	LikesCount      int        `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount   int        `gorm:"not null;default:0" json:"comments_count"`
	SharesCount     int        `gorm:"not null;default:0" json:"shares_count"`
	ViewsCount      int        `gorm:"not null;default:0" json:"views_count"`
	EngagementRate  float64    `gorm:"not null;default:0" json:"engagement_rate"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (SocialPost) TableName() string {
	return "social_posts"
}
