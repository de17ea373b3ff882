package handler

import (
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MetricsHandler struct {
	metricsQuerySvc service.MetricsQueryService
}

func NewMetricsHandler(metricsQuerySvc service.MetricsQueryService) *MetricsHandler {
	return &MetricsHandler{
		metricsQuerySvc: metricsQuerySvc,
	}
}

func (s *MetricsHandler) GetMetrics7Days(c *gin.Context) {
	profileID, err := strconv.ParseUint(c.Param("profile_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	trend, err := s.metricsQuerySvc.GetProfileMetricsBy7Days(c.Request.Context(), c.GetUint64("user_id"), profileID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}

func (s *MetricsHandler) GetMetrics30Days(c *gin.Context) {
	profileID, err := strconv.ParseUint(c.Param("profile_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	trend, err := s.metricsQuerySvc.GetProfileMetricsBy30Days(c.Request.Context(), c.GetUint64("user_id"), profileID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}
