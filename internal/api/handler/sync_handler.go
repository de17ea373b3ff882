package handler

import (
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	orchestratorSvc service.OrchestratorService
}

func NewSyncHandler(orchestratorSvc service.OrchestratorService) *SyncHandler {
	return &SyncHandler{
		orchestratorSvc: orchestratorSvc,
	}
}

// SyncUser 为指定用户派发同步任务，仅限本人或管理员
func (s *SyncHandler) SyncUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if !isAdminOrSelf(c, targetID) {
		response.Error(c, service.UnauthorizedError)
		return
	}

	summary, err := s.orchestratorSvc.SyncUser(c.Request.Context(), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}

// SyncAllUsers 为所有启用用户派发同步任务，仅限管理员
func (s *SyncHandler) SyncAllUsers(c *gin.Context) {
	summary, err := s.orchestratorSvc.SyncAllUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}

func isAdminOrSelf(c *gin.Context, targetID uint64) bool {
	if c.GetUint64("user_id") == targetID {
		return true
	}
	for _, role := range c.GetStringSlice("roles") {
		if role == "ADMIN" {
			return true
		}
	}
	return false
}
