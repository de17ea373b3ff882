package api

import "SocialPulse/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	SyncHandler       *handler.SyncHandler
	MetricsHandler    *handler.MetricsHandler
	GrowthGoalHandler *handler.GrowthGoalHandler
}
