package dto

// MetricPointDTO 主页指标趋势点
type MetricPointDTO struct {
	Date           string  `json:"date"` // 格式化后的日期：2026-08-30
	Followers      int     `json:"followers"`
	EngagementRate float64 `json:"engagement_rate"`
	Likes          int     `json:"likes"`
	Comments       int     `json:"comments"`
	Shares         int     `json:"shares"`
	Views          int     `json:"views"`
}

// ProfileTrendDTO 主页趋势返回包装
type ProfileTrendDTO struct {
	ProfileID uint64            `json:"profile_id"`
	Days      int               `json:"days"` // 7 或 30
	List      []*MetricPointDTO `json:"list"`
}
