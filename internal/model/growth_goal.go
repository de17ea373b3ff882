package model

import (
	"time"
)

// GrowthGoal 用户为某平台设定的增长目标，每个 (user, platform) 一条
type GrowthGoal struct {
	ID             uint64     `gorm:"primaryKey" json:"id"`
	UserID         uint64     `gorm:"not null;index:idx_user_goal_platform,unique" json:"user_id"`
	Platform       string     `gorm:"type:varchar(20);not null;index:idx_user_goal_platform,unique" json:"platform"`
	FollowersGoal  *int       `json:"followers_goal"`
	EngagementGoal *float64   `json:"engagement_goal"`
	Deadline       *time.Time `gorm:"type:date" json:"deadline"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (GrowthGoal) TableName() string {
	return "growth_goals"
}
