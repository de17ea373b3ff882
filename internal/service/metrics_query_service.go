package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/redis"
	"SocialPulse/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type MetricsQueryService interface {
	GetProfileMetricsBy7Days(ctx context.Context, userID uint64, profileID uint64) (*dto.ProfileTrendDTO, error)
	GetProfileMetricsBy30Days(ctx context.Context, userID uint64, profileID uint64) (*dto.ProfileTrendDTO, error)
}

type metricsQueryServiceImpl struct {
	profileRepo repository.SocialProfileRepo
	metricRepo  repository.DailyMetricRepo
}

func NewMetricsQueryService(profileRepo repository.SocialProfileRepo, metricRepo repository.DailyMetricRepo) MetricsQueryService {
	return &metricsQueryServiceImpl{
		profileRepo: profileRepo,
		metricRepo:  metricRepo,
	}
}

func (s *metricsQueryServiceImpl) GetProfileMetricsBy7Days(ctx context.Context, userID uint64, profileID uint64) (*dto.ProfileTrendDTO, error) {
	key := consts.ProfileMetrics7DaysKey + strconv.FormatUint(profileID, 10)
	metricList, err := s.getProfileMetricsByDays(ctx, userID, profileID, key, func() ([]*model.DailyMetric, error) {
		return s.metricRepo.GetMetricsBy7Days(ctx, profileID)
	})
	if err != nil {
		return nil, err
	}
	return toTrendDTO(profileID, 7, metricList), nil
}

func (s *metricsQueryServiceImpl) GetProfileMetricsBy30Days(ctx context.Context, userID uint64, profileID uint64) (*dto.ProfileTrendDTO, error) {
	key := consts.ProfileMetrics30DaysKey + strconv.FormatUint(profileID, 10)
	metricList, err := s.getProfileMetricsByDays(ctx, userID, profileID, key, func() ([]*model.DailyMetric, error) {
		return s.metricRepo.GetMetricsBy30Days(ctx, profileID)
	})
	if err != nil {
		return nil, err
	}
	return toTrendDTO(profileID, 30, metricList), nil
}

func (s *metricsQueryServiceImpl) getProfileMetricsByDays(
	ctx context.Context,
	userID uint64,
	profileID uint64,
	key string,
	fetchFromDB func() ([]*model.DailyMetric, error),
) ([]*model.DailyMetric, error) {
	profile, err := s.profileRepo.GetById(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	// 只能查自己的主页
	if profile.UserID != userID {
		return nil, UnauthorizedError
	}

	list, err := redis.GetList(ctx, key)
	if err != nil {
		return nil, err
	}

	if len(list) != 0 {
		metricList := make([]*model.DailyMetric, 0, len(list))
		for _, v := range list {
			var metric *model.DailyMetric
			if err := json.Unmarshal([]byte(v), &metric); err != nil {
				return nil, err
			}
			metricList = append(metricList, metric)
		}
		return metricList, nil
	}

	metricList, err := fetchFromDB()
	if err != nil {
		return nil, err
	}

	s.cacheMetrics(ctx, key, metricList)
	return metricList, nil
}

func (s *metricsQueryServiceImpl) cacheMetrics(ctx context.Context, key string, metricList []*model.DailyMetric) {
	metricJsons := make([]string, 0, len(metricList))
	for _, v := range metricList {
		metricJson, err := json.Marshal(v)
		if err != nil {
			return
		}
		metricJsons = append(metricJsons, string(metricJson))
	}
	if len(metricJsons) == 0 {
		return
	}

	// 计算距离午夜的时间，提前5分钟过期
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	expiration := time.Until(midnight) - time.Minute*5
	if expiration < 0 {
		return
	}

	_ = redis.SetListWithExpiration(ctx, key, metricJsons, expiration)
}

func toTrendDTO(profileID uint64, days int, metricList []*model.DailyMetric) *dto.ProfileTrendDTO {
	points := make([]*dto.MetricPointDTO, 0, len(metricList))
	for _, m := range metricList {
		points = append(points, &dto.MetricPointDTO{
			Date:           m.MetricDate.Format("2006-01-02"),
			Followers:      m.Followers,
			EngagementRate: m.Engagement,
			Likes:          m.Likes,
			Comments:       m.Comments,
			Shares:         m.Shares,
			Views:          m.Views,
		})
	}
	return &dto.ProfileTrendDTO{
		ProfileID: profileID,
		Days:      days,
		List:      points,
	}
}
