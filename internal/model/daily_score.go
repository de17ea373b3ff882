package model

import (
	"time"
)

// DailyScore 每日综合评分。consistency / audience_quality 两个分项暂未实现计算，
// 权重也未分配给它们，overall_score 只由已填充的分项加权得出
type DailyScore struct {
	ID                   uint64    `gorm:"primaryKey" json:"id"`
	SocialProfileID      uint64    `gorm:"not null;index:idx_profile_score_date,unique" json:"social_profile_id"`
	MetricDate           time.Time `gorm:"type:date;not null;index:idx_profile_score_date,unique;column:metric_date" json:"metric_date"`
	OverallScore         float64   `gorm:"not null;default:0" json:"overall_score"`
	EngagementScore      float64   `gorm:"not null;default:0" json:"engagement_score"`
	ReachScore           float64   `gorm:"not null;default:0" json:"reach_score"`
	GrowthScore          float64   `gorm:"not null;default:0" json:"growth_score"`
	ConsistencyScore     float64   `gorm:"not null;default:0" json:"consistency_score"`
	AudienceQualityScore float64   `gorm:"not null;default:0" json:"audience_quality_score"`
	EngagementWeight     float64   `gorm:"not null;default:0" json:"engagement_weight"`
	ReachWeight          float64   `gorm:"not null;default:0" json:"reach_weight"`
	GrowthWeight         float64   `gorm:"not null;default:0" json:"growth_weight"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (DailyScore) TableName() string {
	return "daily_scores"
}
