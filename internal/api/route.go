package api

import (
	"SocialPulse/internal/api/middleware"
	"SocialPulse/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		syncGroup := apiGroup.Group("/sync")
		syncGroup.Use(middleware.AuthMiddleware())
		{
			// 本人或管理员可触发
			syncGroup.POST("/users/:user_id", group.SyncHandler.SyncUser)

			adminGroup := syncGroup.Group("")
			adminGroup.Use(middleware.CheckRoles("ADMIN"))
			{
				adminGroup.POST("/all-users", group.SyncHandler.SyncAllUsers)
			}
		}

		metricsGroup := apiGroup.Group("/profiles")
		metricsGroup.Use(middleware.AuthMiddleware())
		{
			metricsGroup.GET("/:profile_id/metrics/7d", group.MetricsHandler.GetMetrics7Days)
			metricsGroup.GET("/:profile_id/metrics/30d", group.MetricsHandler.GetMetrics30Days)
		}

		goalGroup := apiGroup.Group("/goals")
		goalGroup.Use(middleware.AuthMiddleware())
		{
			goalGroup.POST("", group.GrowthGoalHandler.SetGoal)
			goalGroup.GET("", group.GrowthGoalHandler.ListGoals)
			goalGroup.DELETE("/:platform", group.GrowthGoalHandler.DeleteGoal)
		}
	}

	return r
}
