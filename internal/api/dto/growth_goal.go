package dto

// SetGrowthGoalDTO 设置增长目标
type SetGrowthGoalDTO struct {
	Platform       string   `json:"platform" binding:"required"`
	FollowersGoal  *int     `json:"followers_goal" validate:"omitempty,min=0"`
	EngagementGoal *float64 `json:"engagement_goal" validate:"omitempty,min=0"`
	Deadline       *string  `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}
