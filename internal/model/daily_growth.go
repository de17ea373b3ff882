package model

import (
	"time"
)

// DailyGrowth 每日涨粉历史记录。目标值单独存 GrowthGoal，不复用本表
type DailyGrowth struct {
	ID                    uint64    `gorm:"primaryKey" json:"id"`
	SocialProfileID       uint64    `gorm:"not null;index:idx_profile_growth_date,unique" json:"social_profile_id"`
	MetricDate            time.Time `gorm:"type:date;not null;index:idx_profile_growth_date,unique;column:metric_date" json:"metric_date"`
	FollowersCount        int       `gorm:"not null;default:0" json:"followers_count"`
	NewFollowersDaily     int       `gorm:"not null;default:0" json:"new_followers_daily"`
	NewFollowersWeekly    int       `gorm:"not null;default:0" json:"new_followers_weekly"`
	NewFollowersMonthly   int       `gorm:"not null;default:0" json:"new_followers_monthly"`
	DailyGrowthRate       float64   `gorm:"not null;default:0" json:"daily_growth_rate"`
	WeeklyGrowthRate      float64   `gorm:"not null;default:0" json:"weekly_growth_rate"`
	MonthlyGrowthRate     float64   `gorm:"not null;default:0" json:"monthly_growth_rate"`
	RetentionRate         float64   `gorm:"not null;default:0" json:"retention_rate"`
	ChurnRate             float64   `gorm:"not null;default:0" json:"churn_rate"`
	ProjectedFollowers30d int       `gorm:"not null;default:0" json:"projected_followers_30d"`
	ProjectedFollowers90d int       `gorm:"not null;default:0" json:"projected_followers_90d"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (DailyGrowth) TableName() string {
	return "daily_growths"
}
