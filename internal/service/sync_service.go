package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/apify"
	"SocialPulse/internal/pkg/metrics"
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type SyncService interface {
	// SyncPlatform 拉取单个用户在单个平台的账号数据并落库当日各项指标
	SyncPlatform(ctx context.Context, userID uint64, platform string) (*dto.SyncOutcome, error)
}

type syncServiceImpl struct {
	registry       *PlatformRegistry
	provider       apify.Provider
	userRepo       repository.UserRepo
	profileRepo    repository.SocialProfileRepo
	postRepo       repository.SocialPostRepo
	metricRepo     repository.DailyMetricRepo
	engagementRepo repository.DailyEngagementRepo
	growthRepo     repository.DailyGrowthRepo
	reachRepo      repository.DailyReachRepo
	scoreRepo      repository.DailyScoreRepo
	postsLimit     int
}

func NewSyncService(
	registry *PlatformRegistry,
	provider apify.Provider,
	userRepo repository.UserRepo,
	profileRepo repository.SocialProfileRepo,
	postRepo repository.SocialPostRepo,
	metricRepo repository.DailyMetricRepo,
	engagementRepo repository.DailyEngagementRepo,
	growthRepo repository.DailyGrowthRepo,
	reachRepo repository.DailyReachRepo,
	scoreRepo repository.DailyScoreRepo,
	postsLimit int,
) SyncService {
	return &syncServiceImpl{
		registry:       registry,
		provider:       provider,
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		postRepo:       postRepo,
		metricRepo:     metricRepo,
		engagementRepo: engagementRepo,
		growthRepo:     growthRepo,
		reachRepo:      reachRepo,
		scoreRepo:      scoreRepo,
		postsLimit:     postsLimit,
	}
}

func (s *syncServiceImpl) SyncPlatform(ctx context.Context, userID uint64, platform string) (*dto.SyncOutcome, error) {
	spec, ok := s.registry.Get(platform)
	if !ok {
		return nil, ErrPlatformNotSupported
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	handle := spec.Handle(user)
	if handle == nil || *handle == "" {
		return nil, ErrHandleNotConfigured
	}

	log.InfoContext(ctx, "Sync started", "user_id", userID, "platform", platform, "handle", *handle)

	account, err := s.provider.FetchAccount(ctx, platform, *handle, s.postsLimit)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Upsert(ctx, &model.SocialProfile{
		UserID:         userID,
		Platform:       platform,
		Username:       account.Profile.Username,
		FullName:       account.Profile.FullName,
		ProfileURL:     account.Profile.ProfileURL,
		AvatarURL:      account.Profile.AvatarURL,
		Bio:            account.Profile.Bio,
		FollowersCount: account.Profile.Followers,
		FollowingCount: account.Profile.Following,
		PostsCount:     account.Profile.PostsCount,
	})
	if err != nil {
		return nil, err
	}

	// 批次内总量，互动口径：点赞 + 评论 + 分享（无分享计数的平台该项恒为 0）
	var totalLikes, totalComments, totalShares, totalViews int
	for _, item := range account.Posts {
		totalLikes += item.Likes
		totalComments += item.Comments
		totalShares += item.Shares
		totalViews += item.Views

		postEngagement := item.Likes + item.Comments + item.Shares
		_, err = s.postRepo.Upsert(ctx, &model.SocialPost{
			PostID:          item.PostID,
			SocialProfileID: profile.ID,
			Platform:        platform,
			Content:         item.Content,
			PostURL:         item.PostURL,
			MediaURL:        item.MediaURL,
			PostedAt:        item.PostedAt,
			ContentType:     item.ContentType,
			LikesCount:      item.Likes,
			CommentsCount:   item.Comments,
			SharesCount:     item.Shares,
			ViewsCount:      item.Views,
			EngagementRate:  metrics.EngagementRate(profile.FollowersCount, postEngagement),
		})
		if err != nil {
			return nil, err
		}
	}

	totalPosts := len(account.Posts)
	totalEngagement := totalLikes + totalComments + totalShares
	engagementRate := metrics.EngagementRate(profile.FollowersCount, totalEngagement)

	today := getMidnight(time.Now())

	_, err = s.metricRepo.Upsert(ctx, &model.DailyMetric{
		SocialProfileID: profile.ID,
		MetricDate:      today,
		Followers:       profile.FollowersCount,
		Engagement:      engagementRate,
		Posts:           profile.PostsCount,
		Likes:           totalLikes,
		Comments:        totalComments,
		Shares:          totalShares,
		Views:           totalViews,
	})
	if err != nil {
		return nil, err
	}

	var avgLikes, avgComments, avgShares float64
	if totalPosts > 0 {
		avgLikes = float64(totalLikes) / float64(totalPosts)
		avgComments = float64(totalComments) / float64(totalPosts)
		avgShares = float64(totalShares) / float64(totalPosts)
	}
	_, err = s.engagementRepo.Upsert(ctx, &model.DailyEngagement{
		SocialProfileID:    profile.ID,
		MetricDate:         today,
		PostsCount:         totalPosts,
		AvgLikesPerPost:    avgLikes,
		AvgCommentsPerPost: avgComments,
		AvgSharesPerPost:   avgShares,
		EngagementRate:     engagementRate,
		TotalLikes:         totalLikes,
		TotalComments:      totalComments,
		TotalShares:        totalShares,
		VideoViews:         totalViews,
	})
	if err != nil {
		return nil, err
	}

	// 日环比需要昨天的涨粉记录，没有则视为首日，增量与增长率都置 0
	yesterday := today.AddDate(0, 0, -1)
	prevGrowth, err := s.growthRepo.GetByDate(ctx, profile.ID, yesterday)
	if err != nil {
		return nil, err
	}
	var newFollowersDaily int
	var dailyGrowthRate float64
	if prevGrowth != nil {
		newFollowersDaily = profile.FollowersCount - prevGrowth.FollowersCount
		dailyGrowthRate = metrics.GrowthRate(profile.FollowersCount, prevGrowth.FollowersCount)
	}
	_, err = s.growthRepo.Upsert(ctx, &model.DailyGrowth{
		SocialProfileID:       profile.ID,
		MetricDate:            today,
		FollowersCount:        profile.FollowersCount,
		NewFollowersDaily:     newFollowersDaily,
		DailyGrowthRate:       dailyGrowthRate,
		ProjectedFollowers30d: metrics.ProjectedFollowers(profile.FollowersCount, dailyGrowthRate, 30),
		ProjectedFollowers90d: metrics.ProjectedFollowers(profile.FollowersCount, dailyGrowthRate, 90),
	})
	if err != nil {
		return nil, err
	}

	if spec.HasViews {
		// 平台不提供真实去重触达，按总播放量的 80% 估算
		_, err = s.reachRepo.Upsert(ctx, &model.DailyReach{
			SocialProfileID: profile.ID,
			MetricDate:      today,
			Impressions:     totalViews,
			Reach:           int(float64(totalViews) * 0.8),
		})
		if err != nil {
			return nil, err
		}
	}

	engagementScore := clampScore(engagementRate * 10)
	growthScore := clampScore(dailyGrowthRate * 5)
	var reachScore float64
	if spec.HasViews {
		reachScore = clampScore(float64(totalViews) / 1000)
	}
	overall := engagementScore*spec.EngagementWeight +
		growthScore*spec.GrowthWeight +
		reachScore*spec.ReachWeight

	_, err = s.scoreRepo.Upsert(ctx, &model.DailyScore{
		SocialProfileID:  profile.ID,
		MetricDate:       today,
		OverallScore:     overall,
		EngagementScore:  engagementScore,
		GrowthScore:      growthScore,
		ReachScore:       reachScore,
		EngagementWeight: spec.EngagementWeight,
		GrowthWeight:     spec.GrowthWeight,
		ReachWeight:      spec.ReachWeight,
	})
	if err != nil {
		return nil, err
	}

	if err = s.profileRepo.UpdateEngagementRate(ctx, profile.ID, engagementRate); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "Sync finished",
		"user_id", userID,
		"platform", platform,
		"profile_id", profile.ID,
		"followers", profile.FollowersCount,
		"posts_synced", totalPosts,
	)

	return &dto.SyncOutcome{
		UserID:         userID,
		Platform:       platform,
		ProfileID:      profile.ID,
		Username:       profile.Username,
		Followers:      profile.FollowersCount,
		PostsSynced:    totalPosts,
		EngagementRate: engagementRate,
	}, nil
}

// clampScore 评分分项上限 100，下限不截断
func clampScore(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

func getMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
