package metrics

import (
	"math"
)

// EngagementRate 互动率百分比：总互动量 / 粉丝数 * 100
func EngagementRate(followers int, engagement int) float64 {
	if followers <= 0 {
		return 0
	}
	return float64(engagement) / float64(followers) * 100
}

// GrowthRate 环比增长率百分比：(当前 - 上期) / 上期 * 100
func GrowthRate(current int, previous int) float64 {
	if previous <= 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

// ProjectedFollowers 按日增长率复利外推 days 天后的粉丝数。
// 长周期同样使用日增长率复利，结果向零截断
func ProjectedFollowers(current int, dailyGrowthRate float64, days int) int {
	projected := float64(current) * math.Pow(1+dailyGrowthRate/100, float64(days))
	return int(projected)
}
