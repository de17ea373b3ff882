package model

import (
	"time"
)

// DailyReach 每日曝光/触达，目前只有视频平台会写入。
// reach 为估算值（总播放量的 80%），不是平台给出的真实去重数据
type DailyReach struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	SocialProfileID uint64    `gorm:"not null;index:idx_profile_reach_date,unique" json:"social_profile_id"`
	MetricDate      time.Time `gorm:"type:date;not null;index:idx_profile_reach_date,unique;column:metric_date" json:"metric_date"`
	Impressions     int       `gorm:"not null;default:0" json:"impressions"`
	Reach           int       `gorm:"not null;default:0" json:"reach"`
	StoryViews      int       `gorm:"not null;default:0" json:"story_views"`
	ProfileViews    int       `gorm:"not null;default:0" json:"profile_views"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (DailyReach) TableName() string {
	return "daily_reaches"
}
