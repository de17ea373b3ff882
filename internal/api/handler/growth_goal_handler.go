package handler

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type GrowthGoalHandler struct {
	goalSvc service.GrowthGoalService
}

func NewGrowthGoalHandler(goalSvc service.GrowthGoalService) *GrowthGoalHandler {
	return &GrowthGoalHandler{
		goalSvc: goalSvc,
	}
}

func (s *GrowthGoalHandler) SetGoal(c *gin.Context) {
	var req dto.SetGrowthGoalDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	goal, err := s.goalSvc.SetGoal(c.Request.Context(), c.GetUint64("user_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, goal)
}

func (s *GrowthGoalHandler) ListGoals(c *gin.Context) {
	goals, err := s.goalSvc.ListGoals(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, goals)
}

func (s *GrowthGoalHandler) DeleteGoal(c *gin.Context) {
	err := s.goalSvc.DeleteGoal(c.Request.Context(), c.GetUint64("user_id"), c.Param("platform"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
