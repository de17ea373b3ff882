package apify

import (
	"SocialPulse/internal/api/config"
	"SocialPulse/internal/pkg/consts"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	defaultBaseURL         = "https://api.apify.com/v2"
	defaultPollInterval    = 2 * time.Second
	defaultMaxPollAttempts = 30
	defaultMinReqInterval  = 500 * time.Millisecond

	actorInstagram = "apify~instagram-profile-scraper"
	actorFacebook  = "apify~facebook-page-scraper"
	actorTiktok    = "clockworks~tiktok-profile-scraper"

	statusSucceeded = "SUCCEEDED"
	statusRunning   = "RUNNING"
	statusReady     = "READY"
)

// AccountData 一次抓取得到的账号快照与帖子列表
type AccountData struct {
	Profile ProfileSnapshot
	Posts   []PostItem
}

type ProfileSnapshot struct {
	Username   string
	FullName   string
	Bio        string
	AvatarURL  string
	ProfileURL string
	Followers  int
	Following  int
	PostsCount int
}

type PostItem struct {
	PostID      string
	Content     string
	PostURL     string
	MediaURL    string
	ContentType string
	PostedAt    *time.Time
	Likes       int
	Comments    int
	Shares      int
	Views       int
}

// Provider 屏蔽具体抓取实现，便于测试替换
type Provider interface {
	FetchAccount(ctx context.Context, platform string, handle string, postsLimit int) (*AccountData, error)
}

// Client 基于 Apify Actor 的抓取实现
type Client struct {
	http            *resty.Client
	pollInterval    time.Duration
	maxPollAttempts int
	gate            *rateGate
}

func NewClient(cfg config.ApifyConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	pollInterval := defaultPollInterval
	if cfg.PollInterval > 0 {
		pollInterval = time.Duration(cfg.PollInterval) * time.Second
	}
	maxAttempts := cfg.MaxPollAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxPollAttempts
	}
	minInterval := defaultMinReqInterval
	if cfg.MinRequestInterval > 0 {
		minInterval = time.Duration(cfg.MinRequestInterval) * time.Millisecond
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(60*time.Second).
		SetAuthToken(cfg.Token).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:            client,
		pollInterval:    pollInterval,
		maxPollAttempts: maxAttempts,
		gate:            newRateGate(minInterval),
	}
}

func (c *Client) FetchAccount(ctx context.Context, platform string, handle string, postsLimit int) (*AccountData, error) {
	if postsLimit <= 0 {
		postsLimit = consts.DefaultPostsLimit
	}
	switch platform {
	case consts.PlatformInstagram:
		return c.fetchInstagram(ctx, handle, postsLimit)
	case consts.PlatformFacebook:
		return c.fetchFacebook(ctx, handle)
	case consts.PlatformTiktok:
		return c.fetchTiktok(ctx, handle, postsLimit)
	default:
		return nil, fmt.Errorf("%w: 未知平台 %s", ErrRequestFailed, platform)
	}
}

func (c *Client) fetchInstagram(ctx context.Context, handle string, limit int) (*AccountData, error) {
	// 账号详情与帖子是两次独立的 Actor 运行
	var profiles []igProfileItem
	err := c.runActor(ctx, actorInstagram, map[string]any{
		"username":     handle,
		"resultsLimit": 1,
		"resultsType":  "details",
		"proxy":        map[string]any{"useApifyProxy": true},
	}, &profiles)
	if err != nil {
		return nil, err
	}

	var posts []igPostItem
	err = c.runActor(ctx, actorInstagram, map[string]any{
		"username":     handle,
		"resultsLimit": limit,
		"resultsType":  "posts",
		"proxy":        map[string]any{"useApifyProxy": true},
	}, &posts)
	if err != nil {
		return nil, err
	}

	return normalizeInstagram(handle, profiles, posts), nil
}

func (c *Client) fetchFacebook(ctx context.Context, handle string) (*AccountData, error) {
	var pages []fbPageItem
	err := c.runActor(ctx, actorFacebook, map[string]any{
		"startUrls":   []map[string]any{{"url": "https://www.facebook.com/" + handle}},
		"resultsType": "details",
		"proxy":       map[string]any{"useApifyProxy": true},
	}, &pages)
	if err != nil {
		return nil, err
	}

	return normalizeFacebook(handle, pages), nil
}

func (c *Client) fetchTiktok(ctx context.Context, handle string, limit int) (*AccountData, error) {
	var accounts []ttAccountItem
	err := c.runActor(ctx, actorTiktok, map[string]any{
		"profiles":       []string{handle},
		"resultsPerPage": limit,
		"proxy":          map[string]any{"useApifyProxy": true},
	}, &accounts)
	if err != nil {
		return nil, err
	}

	return normalizeTiktok(handle, accounts), nil
}

type runResponse struct {
	Data struct {
		ID               string `json:"id"`
		Status           string `json:"status"`
		DefaultDatasetID string `json:"defaultDatasetId"`
	} `json:"data"`
}

type datasetResponse struct {
	Data struct {
		Items json.RawMessage `json:"items"`
	} `json:"data"`
}

// runActor 启动 Actor、轮询直至结束并把数据集条目解析到 out。
// 数据集为空不算错误，out 保持零值
func (c *Client) runActor(ctx context.Context, actorID string, input map[string]any, out any) error {
	if err := c.gate.wait(ctx); err != nil {
		return err
	}

	var run runResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"runInput": input}).
		SetResult(&run).
		Post("/acts/" + actorID + "/runs")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: 状态码 %d", ErrRequestFailed, resp.StatusCode())
	}
	if run.Data.ID == "" {
		return fmt.Errorf("%w: 未返回运行 ID", ErrRunFailed)
	}

	log.InfoContext(ctx, "Apify actor run started", "actor", actorID, "run_id", run.Data.ID)

	status := run.Data.Status
	datasetID := run.Data.DefaultDatasetID
	for attempts := 0; status == statusRunning || status == statusReady || status == ""; attempts++ {
		if attempts >= c.maxPollAttempts {
			return fmt.Errorf("%w: run %s", ErrRunTimeout, run.Data.ID)
		}

		timer := time.NewTimer(c.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		var info runResponse
		resp, err = c.http.R().
			SetContext(ctx).
			SetResult(&info).
			Get("/actor-runs/" + run.Data.ID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRequestFailed, err)
		}
		if resp.IsError() {
			return fmt.Errorf("%w: 状态码 %d", ErrRequestFailed, resp.StatusCode())
		}
		status = info.Data.Status
		if info.Data.DefaultDatasetID != "" {
			datasetID = info.Data.DefaultDatasetID
		}
	}

	if status != statusSucceeded {
		return fmt.Errorf("%w: run %s 状态 %s", ErrRunFailed, run.Data.ID, status)
	}
	if datasetID == "" {
		return fmt.Errorf("%w: run %s 未返回数据集", ErrRunFailed, run.Data.ID)
	}

	var dataset datasetResponse
	resp, err = c.http.R().
		SetContext(ctx).
		SetResult(&dataset).
		Get("/datasets/" + datasetID + "/items")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: 状态码 %d", ErrRequestFailed, resp.StatusCode())
	}

	if len(dataset.Data.Items) == 0 {
		log.WarnContext(ctx, "Apify dataset empty", "actor", actorID, "run_id", run.Data.ID)
		return nil
	}
	if err = json.Unmarshal(dataset.Data.Items, out); err != nil {
		return fmt.Errorf("%w: 数据集解析失败: %v", ErrRunFailed, err)
	}
	return nil
}
