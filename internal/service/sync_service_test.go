package service

import (
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/apify"
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/util"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncFixture struct {
	svc            SyncService
	provider       *fakeProvider
	profileRepo    *fakeProfileRepo
	postRepo       *fakePostRepo
	metricRepo     *fakeMetricRepo
	engagementRepo *fakeEngagementRepo
	growthRepo     *fakeGrowthRepo
	reachRepo      *fakeReachRepo
	scoreRepo      *fakeScoreRepo
}

func newSyncFixture(users ...*model.User) *syncFixture {
	f := &syncFixture{
		provider:       newFakeProvider(),
		profileRepo:    newFakeProfileRepo(),
		postRepo:       newFakePostRepo(),
		metricRepo:     newFakeMetricRepo(),
		engagementRepo: newFakeEngagementRepo(),
		growthRepo:     newFakeGrowthRepo(),
		reachRepo:      newFakeReachRepo(),
		scoreRepo:      newFakeScoreRepo(),
	}
	f.svc = NewSyncService(
		DefaultPlatformRegistry(),
		f.provider,
		newFakeUserRepo(users...),
		f.profileRepo,
		f.postRepo,
		f.metricRepo,
		f.engagementRepo,
		f.growthRepo,
		f.reachRepo,
		f.scoreRepo,
		30,
	)
	return f
}

func igUser(id uint64) *model.User {
	return &model.User{ID: id, InstagramUsername: util.PtrStr("alice"), IsActive: true}
}

func TestSyncPlatformInstagram(t *testing.T) {
	f := newSyncFixture(igUser(1))
	f.provider.set(consts.PlatformInstagram, &apify.AccountData{
		Profile: apify.ProfileSnapshot{
			Username:   "alice",
			ProfileURL: "https://www.instagram.com/alice/",
			Followers:  1000,
			Following:  200,
			PostsCount: 42,
		},
		Posts: []apify.PostItem{
			{PostID: "p1", Likes: 10, Comments: 1},
			{PostID: "p2", Likes: 20, Comments: 2},
		},
	})

	outcome, err := f.svc.SyncPlatform(context.Background(), 1, consts.PlatformInstagram)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), outcome.UserID)
	assert.Equal(t, 1000, outcome.Followers)
	assert.Equal(t, 2, outcome.PostsSynced)
	// (10+1+20+2) / 1000 * 100
	assert.InDelta(t, 3.3, outcome.EngagementRate, 1e-9)

	today := getMidnight(time.Now())

	metric, err := f.metricRepo.GetByDate(context.Background(), outcome.ProfileID, today)
	require.NoError(t, err)
	require.NotNil(t, metric)
	assert.Equal(t, 1000, metric.Followers)
	assert.Equal(t, 42, metric.Posts)
	assert.Equal(t, 30, metric.Likes)
	assert.Equal(t, 3, metric.Comments)
	assert.Zero(t, metric.Shares)
	assert.Zero(t, metric.Views)
	assert.InDelta(t, 3.3, metric.Engagement, 1e-9)

	engagement, err := f.engagementRepo.GetByDate(context.Background(), outcome.ProfileID, today)
	require.NoError(t, err)
	require.NotNil(t, engagement)
	assert.Equal(t, 2, engagement.PostsCount)
	assert.InDelta(t, 15.0, engagement.AvgLikesPerPost, 1e-9)
	assert.InDelta(t, 1.5, engagement.AvgCommentsPerPost, 1e-9)

	// 首日没有昨日数据，增长项置 0，外推等于当前粉丝数
	growth, err := f.growthRepo.GetByDate(context.Background(), outcome.ProfileID, today)
	require.NoError(t, err)
	require.NotNil(t, growth)
	assert.Zero(t, growth.NewFollowersDaily)
	assert.Zero(t, growth.DailyGrowthRate)
	assert.Equal(t, 1000, growth.ProjectedFollowers30d)

	// Instagram 没有播放量，不产出触达
	reach, err := f.reachRepo.GetByDate(context.Background(), outcome.ProfileID, today)
	require.NoError(t, err)
	assert.Nil(t, reach)

	score, err := f.scoreRepo.GetByDate(context.Background(), outcome.ProfileID, today)
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.InDelta(t, 33.0, score.EngagementScore, 1e-9)
	assert.Zero(t, score.GrowthScore)
	assert.Zero(t, score.ReachScore)
	assert.InDelta(t, 33.0*0.6, score.OverallScore, 1e-9)
	assert.InDelta(t, 0.6, score.EngagementWeight, 1e-9)
	assert.InDelta(t, 0.4, score.GrowthWeight, 1e-9)

	profile, err := f.profileRepo.GetById(context.Background(), outcome.ProfileID)
	require.NoError(t, err)
	assert.InDelta(t, 3.3, profile.EngagementRate, 1e-9)

	post, err := f.postRepo.GetByPostId(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, outcome.ProfileID, post.SocialProfileID)
	assert.InDelta(t, 1.1, post.EngagementRate, 1e-9)
}

func TestSyncPlatformEmptyBatch(t *testing.T) {
	f := newSyncFixture(igUser(1))
	f.provider.set(consts.PlatformInstagram, &apify.AccountData{
		Profile: apify.ProfileSnapshot{Username: "alice", Followers: 500},
	})

	outcome, err := f.svc.SyncPlatform(context.Background(), 1, consts.PlatformInstagram)
	require.NoError(t, err)

	assert.Zero(t, outcome.PostsSynced)
	assert.Zero(t, outcome.EngagementRate)

	today := getMidnight(time.Now())
	engagement, err := f.engagementRepo.GetByDate(context.Background(), outcome.ProfileID, today)
	require.NoError(t, err)
	require.NotNil(t, engagement)
	assert.Zero(t, engagement.PostsCount)
	assert.Zero(t, engagement.AvgLikesPerPost)
}

func TestSyncPlatformSameDayOverwrites(t *testing.T) {
	f := newSyncFixture(igUser(1))
	f.provider.set(consts.PlatformInstagram, &apify.AccountData{
		Profile: apify.ProfileSnapshot{Username: "alice", Followers: 1000},
		Posts:   []apify.PostItem{{PostID: "p1", Likes: 10}},
	})

	first, err := f.svc.SyncPlatform(context.Background(), 1, consts.PlatformInstagram)
	require.NoError(t, err)

	f.provider.set(consts.PlatformInstagram, &apify.AccountData{
		Profile: apify.ProfileSnapshot{Username: "alice", Followers: 1010},
		Posts:   []apify.PostItem{{PostID: "p1", Likes: 15}},
	})

	second, err := f.svc.SyncPlatform(context.Background(), 1, consts.PlatformInstagram)
	require.NoError(t, err)

	// 同一主页同一天重跑覆盖，不产生新行
	assert.Equal(t, first.ProfileID, second.ProfileID)
	assert.Len(t, f.metricRepo.rows, 1)

	today := getMidnight(time.Now())
	metric, err := f.metricRepo.GetByDate(context.Background(), second.ProfileID, today)
	require.NoError(t, err)
	assert.Equal(t, 1010, metric.Followers)
	assert.Equal(t, 15, metric.Likes)
}

func TestSyncPlatformHandleNotConfigured(t *testing.T) {
	f := newSyncFixture(&model.User{ID: 1, IsActive: true})

	_, err := f.svc.SyncPlatform(context.Background(), 1, consts.PlatformInstagram)

	assert.ErrorIs(t, err, ErrHandleNotConfigured)
	// 未配置账号时不应触达外部服务
	assert.Zero(t, f.provider.calls)
}

func TestSyncPlatformUnknownPlatform(t *testing.T) {
	f := newSyncFixture(igUser(1))

	_, err := f.svc.SyncPlatform(context.Background(), 1, "myspace")

	assert.ErrorIs(t, err, ErrPlatformNotSupported)
}

func TestSyncPlatformUserNotFound(t *testing.T) {
	f := newSyncFixture()

	_, err := f.svc.SyncPlatform(context.Background(), 99, consts.PlatformInstagram)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSyncPlatformProviderError(t *testing.T) {
	f := newSyncFixture(igUser(1))
	f.provider.err = apify.ErrRunTimeout

	_, err := f.svc.SyncPlatform(context.Background(), 1, consts.PlatformInstagram)

	assert.ErrorIs(t, err, apify.ErrExternalAPI)
	// 抓取失败时不落任何当日指标
	assert.Empty(t, f.metricRepo.rows)
}

func TestSyncPlatformTiktokReachAndScore(t *testing.T) {
	user := &model.User{ID: 2, TiktokUsername: util.PtrStr("bob"), IsActive: true}
	f := newSyncFixture(user)
	f.provider.set(consts.PlatformTiktok, &apify.AccountData{
		Profile: apify.ProfileSnapshot{Username: "bob", Followers: 5000},
		Posts: []apify.PostItem{
			{PostID: "v1", Likes: 100, Comments: 20, Shares: 5, Views: 9000},
			{PostID: "v2", Likes: 50, Comments: 10, Shares: 5, Views: 3000},
		},
	})

	outcome, err := f.svc.SyncPlatform(context.Background(), 2, consts.PlatformTiktok)
	require.NoError(t, err)

	today := getMidnight(time.Now())

	reach, err := f.reachRepo.GetByDate(context.Background(), outcome.ProfileID, today)
	require.NoError(t, err)
	require.NotNil(t, reach)
	assert.Equal(t, 12000, reach.Impressions)
	assert.Equal(t, 9600, reach.Reach)

	// (100+20+5+50+10+5) / 5000 * 100 = 3.8
	assert.InDelta(t, 3.8, outcome.EngagementRate, 1e-9)

	score, err := f.scoreRepo.GetByDate(context.Background(), outcome.ProfileID, today)
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.InDelta(t, 38.0, score.EngagementScore, 1e-9)
	assert.InDelta(t, 12.0, score.ReachScore, 1e-9)
	assert.InDelta(t, 0.5, score.EngagementWeight, 1e-9)
	assert.InDelta(t, 0.3, score.GrowthWeight, 1e-9)
	assert.InDelta(t, 0.2, score.ReachWeight, 1e-9)
	assert.InDelta(t, 38.0*0.5+0*0.3+12.0*0.2, score.OverallScore, 1e-9)
}

func TestSyncPlatformGrowthWithYesterday(t *testing.T) {
	f := newSyncFixture(igUser(1))
	f.provider.set(consts.PlatformInstagram, &apify.AccountData{
		Profile: apify.ProfileSnapshot{Username: "alice", Followers: 1000},
	})

	// 先同步一次建立主页，再种昨日涨粉记录
	first, err := f.svc.SyncPlatform(context.Background(), 1, consts.PlatformInstagram)
	require.NoError(t, err)

	yesterday := getMidnight(time.Now()).AddDate(0, 0, -1)
	_, err = f.growthRepo.Upsert(context.Background(), &model.DailyGrowth{
		SocialProfileID: first.ProfileID,
		MetricDate:      yesterday,
		FollowersCount:  800,
	})
	require.NoError(t, err)

	f.provider.set(consts.PlatformInstagram, &apify.AccountData{
		Profile: apify.ProfileSnapshot{Username: "alice", Followers: 1000},
	})
	second, err := f.svc.SyncPlatform(context.Background(), 1, consts.PlatformInstagram)
	require.NoError(t, err)

	today := getMidnight(time.Now())
	growth, err := f.growthRepo.GetByDate(context.Background(), second.ProfileID, today)
	require.NoError(t, err)
	require.NotNil(t, growth)
	assert.Equal(t, 200, growth.NewFollowersDaily)
	assert.InDelta(t, 25.0, growth.DailyGrowthRate, 1e-9)
	// 日增 25% 复利 30 天后向零截断
	assert.Greater(t, growth.ProjectedFollowers30d, 1000)

	score, err := f.scoreRepo.GetByDate(context.Background(), second.ProfileID, today)
	require.NoError(t, err)
	// 25 * 5 超过上限，截断到 100
	assert.InDelta(t, 100.0, score.GrowthScore, 1e-9)
}
