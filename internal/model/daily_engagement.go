package model

import (
	"time"
)

// DailyEngagement 每日互动汇总（批次内总量与单帖均值）
type DailyEngagement struct {
	ID                 uint64    `gorm:"primaryKey" json:"id"`
	SocialProfileID    uint64    `gorm:"not null;index:idx_profile_engagement_date,unique" json:"social_profile_id"`
	MetricDate         time.Time `gorm:"type:date;not null;index:idx_profile_engagement_date,unique;column:metric_date" json:"metric_date"`
	PostsCount         int       `gorm:"not null;default:0" json:"posts_count"`
	AvgLikesPerPost    float64   `gorm:"not null;default:0" json:"avg_likes_per_post"`
	AvgCommentsPerPost float64   `gorm:"not null;default:0" json:"avg_comments_per_post"`
	AvgSharesPerPost   float64   `gorm:"not null;default:0" json:"avg_shares_per_post"`
	EngagementRate     float64   `gorm:"not null;default:0" json:"engagement_rate"`
	TotalLikes         int       `gorm:"not null;default:0" json:"total_likes"`
	TotalComments      int       `gorm:"not null;default:0" json:"total_comments"`
	TotalShares        int       `gorm:"not null;default:0" json:"total_shares"`
	GrowthRate         float64   `gorm:"not null;default:0" json:"growth_rate"`
	VideoViews         int       `gorm:"not null;default:0" json:"video_views"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (DailyEngagement) TableName() string {
	return "daily_engagements"
}
