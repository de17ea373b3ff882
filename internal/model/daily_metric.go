package model

import (
	"time"
)

// DailyMetric 每个主页每天一行的基础指标快照，同日重跑覆盖而非新增
type DailyMetric struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	SocialProfileID uint64    `gorm:"not null;index:idx_profile_metric_date,unique" json:"social_profile_id"`
	MetricDate      time.Time `gorm:"type:date;not null;index:idx_profile_metric_date,unique;column:metric_date" json:"metric_date"`
	Followers       int       `gorm:"not null;default:0" json:"followers"`
	Engagement      float64   `gorm:"not null;default:0" json:"engagement"`
	Posts           int       `gorm:"not null;default:0" json:"posts"`
	Likes           int       `gorm:"not null;default:0" json:"likes"`
	Comments        int       `gorm:"not null;default:0" json:"comments"`
	Shares          int       `gorm:"not null;default:0" json:"shares"`
	Views           int       `gorm:"not null;default:0" json:"views"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (DailyMetric) TableName() string {
	return "daily_metrics"
}
