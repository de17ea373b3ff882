package service

import (
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/apify"
	"context"
	"fmt"
	"time"
)

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint64]*model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetActiveUsers(_ context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		if u.IsActive {
			users = append(users, u)
		}
	}
	return users, nil
}

type fakeProfileRepo struct {
	nextID   uint64
	profiles map[string]*model.SocialProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*model.SocialProfile)}
}

func profileKey(userID uint64, platform string) string {
	return fmt.Sprintf("%d:%s", userID, platform)
}

func (r *fakeProfileRepo) Upsert(_ context.Context, profile *model.SocialProfile) (*model.SocialProfile, error) {
	key := profileKey(profile.UserID, profile.Platform)
	if existing, ok := r.profiles[key]; ok {
		profile.ID = existing.ID
		profile.EngagementRate = existing.EngagementRate
	} else {
		r.nextID++
		profile.ID = r.nextID
	}
	stored := *profile
	r.profiles[key] = &stored
	result := stored
	return &result, nil
}

func (r *fakeProfileRepo) GetById(_ context.Context, id uint64) (*model.SocialProfile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			result := *p
			return &result, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) GetByUserAndPlatform(_ context.Context, userID uint64, platform string) (*model.SocialProfile, error) {
	if p, ok := r.profiles[profileKey(userID, platform)]; ok {
		result := *p
		return &result, nil
	}
	return nil, nil
}

func (r *fakeProfileRepo) UpdateEngagementRate(_ context.Context, id uint64, rate float64) error {
	for _, p := range r.profiles {
		if p.ID == id {
			p.EngagementRate = rate
			return nil
		}
	}
	return nil
}

type fakePostRepo struct {
	posts map[string]*model.SocialPost
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*model.SocialPost)}
}

func (r *fakePostRepo) Upsert(_ context.Context, post *model.SocialPost) (*model.SocialPost, error) {
	stored := *post
	r.posts[post.PostID] = &stored
	result := stored
	return &result, nil
}

func (r *fakePostRepo) GetByPostId(_ context.Context, postID string) (*model.SocialPost, error) {
	if p, ok := r.posts[postID]; ok {
		result := *p
		return &result, nil
	}
	return nil, nil
}

func dailyKey(profileID uint64, date time.Time) string {
	return fmt.Sprintf("%d:%s", profileID, date.Format("2006-01-02"))
}

type fakeMetricRepo struct {
	rows map[string]*model.DailyMetric
}

func newFakeMetricRepo() *fakeMetricRepo {
	return &fakeMetricRepo{rows: make(map[string]*model.DailyMetric)}
}

func (r *fakeMetricRepo) Upsert(_ context.Context, metric *model.DailyMetric) (*model.DailyMetric, error) {
	stored := *metric
	r.rows[dailyKey(metric.SocialProfileID, metric.MetricDate)] = &stored
	result := stored
	return &result, nil
}

func (r *fakeMetricRepo) GetByDate(_ context.Context, profileID uint64, date time.Time) (*model.DailyMetric, error) {
	if m, ok := r.rows[dailyKey(profileID, date)]; ok {
		result := *m
		return &result, nil
	}
	return nil, nil
}

func (r *fakeMetricRepo) GetMetricsBy7Days(_ context.Context, profileID uint64) ([]*model.DailyMetric, error) {
	return r.since(profileID, 7), nil
}

func (r *fakeMetricRepo) GetMetricsBy30Days(_ context.Context, profileID uint64) ([]*model.DailyMetric, error) {
	return r.since(profileID, 30), nil
}

func (r *fakeMetricRepo) since(profileID uint64, days int) []*model.DailyMetric {
	cutoff := time.Now().AddDate(0, 0, -days)
	rows := make([]*model.DailyMetric, 0)
	for _, m := range r.rows {
		if m.SocialProfileID == profileID && m.MetricDate.After(cutoff) {
			result := *m
			rows = append(rows, &result)
		}
	}
	return rows
}

type fakeEngagementRepo struct {
	rows map[string]*model.DailyEngagement
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{rows: make(map[string]*model.DailyEngagement)}
}

func (r *fakeEngagementRepo) Upsert(_ context.Context, engagement *model.DailyEngagement) (*model.DailyEngagement, error) {
	stored := *engagement
	r.rows[dailyKey(engagement.SocialProfileID, engagement.MetricDate)] = &stored
	result := stored
	return &result, nil
}

func (r *fakeEngagementRepo) GetByDate(_ context.Context, profileID uint64, date time.Time) (*model.DailyEngagement, error) {
	if e, ok := r.rows[dailyKey(profileID, date)]; ok {
		result := *e
		return &result, nil
	}
	return nil, nil
}

type fakeGrowthRepo struct {
	rows map[string]*model.DailyGrowth
}

func newFakeGrowthRepo() *fakeGrowthRepo {
	return &fakeGrowthRepo{rows: make(map[string]*model.DailyGrowth)}
}

func (r *fakeGrowthRepo) Upsert(_ context.Context, growth *model.DailyGrowth) (*model.DailyGrowth, error) {
	stored := *growth
	r.rows[dailyKey(growth.SocialProfileID, growth.MetricDate)] = &stored
	result := stored
	return &result, nil
}

func (r *fakeGrowthRepo) GetByDate(_ context.Context, profileID uint64, date time.Time) (*model.DailyGrowth, error) {
	if g, ok := r.rows[dailyKey(profileID, date)]; ok {
		result := *g
		return &result, nil
	}
	return nil, nil
}

type fakeReachRepo struct {
	rows map[string]*model.DailyReach
}

func newFakeReachRepo() *fakeReachRepo {
	return &fakeReachRepo{rows: make(map[string]*model.DailyReach)}
}

func (r *fakeReachRepo) Upsert(_ context.Context, reach *model.DailyReach) (*model.DailyReach, error) {
	stored := *reach
	r.rows[dailyKey(reach.SocialProfileID, reach.MetricDate)] = &stored
	result := stored
	return &result, nil
}

func (r *fakeReachRepo) GetByDate(_ context.Context, profileID uint64, date time.Time) (*model.DailyReach, error) {
	if v, ok := r.rows[dailyKey(profileID, date)]; ok {
		result := *v
		return &result, nil
	}
	return nil, nil
}

type fakeScoreRepo struct {
	rows map[string]*model.DailyScore
}

func newFakeScoreRepo() *fakeScoreRepo {
	return &fakeScoreRepo{rows: make(map[string]*model.DailyScore)}
}

func (r *fakeScoreRepo) Upsert(_ context.Context, score *model.DailyScore) (*model.DailyScore, error) {
	stored := *score
	r.rows[dailyKey(score.SocialProfileID, score.MetricDate)] = &stored
	result := stored
	return &result, nil
}

func (r *fakeScoreRepo) GetByDate(_ context.Context, profileID uint64, date time.Time) (*model.DailyScore, error) {
	if v, ok := r.rows[dailyKey(profileID, date)]; ok {
		result := *v
		return &result, nil
	}
	return nil, nil
}

type fakeProvider struct {
	accounts map[string]*apify.AccountData
	err      error
	calls    int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{accounts: make(map[string]*apify.AccountData)}
}

func (p *fakeProvider) set(platform string, data *apify.AccountData) {
	p.accounts[platform] = data
}

func (p *fakeProvider) FetchAccount(_ context.Context, platform string, _ string, _ int) (*apify.AccountData, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	if data, ok := p.accounts[platform]; ok {
		return data, nil
	}
	return &apify.AccountData{}, nil
}

type fakeDispatcher struct {
	next    int
	failFor map[string]error
	queued  []string
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{failFor: make(map[string]error)}
}

func (d *fakeDispatcher) EnqueueSync(_ context.Context, userID uint64, platform string) (string, error) {
	if err, ok := d.failFor[platform]; ok {
		return "", err
	}
	d.next++
	taskID := fmt.Sprintf("task-%d", d.next)
	d.queued = append(d.queued, fmt.Sprintf("%d:%s", userID, platform))
	return taskID, nil
}
