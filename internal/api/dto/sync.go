package dto

// 汇总状态：任一平台未成功入队为 partial_error，
// 用户级失败（用户不存在等）为 error，其余为 ok
const (
	SyncStatusOk           = "ok"
	SyncStatusPartialError = "partial_error"
	SyncStatusError        = "error"
)

// 单平台派发结果状态
const (
	PlatformStatusQueued  = "queued"
	PlatformStatusSkipped = "skipped"
	PlatformStatusError   = "error"
)

// SyncPlatformResult 单个平台的同步派发结果
type SyncPlatformResult struct {
	Status  string `json:"status"`
	TaskID  string `json:"task_id,omitempty"`
	Message string `json:"message,omitempty"`
}

// SyncUserSummary 单个用户所有平台的派发汇总
type SyncUserSummary struct {
	UserID    uint64                         `json:"user_id"`
	Platforms []string                       `json:"platforms"`
	Results   map[string]*SyncPlatformResult `json:"results"`
	Status    string                         `json:"status"`
	Error     string                         `json:"error,omitempty"`
}

// SyncAllSummary 全量同步的汇总
type SyncAllSummary struct {
	TotalUsers int                         `json:"total_users"`
	Results    map[uint64]*SyncUserSummary `json:"results"`
	Status     string                      `json:"status"`
}

// SyncOutcome 同步任务真正执行完后的结果（消费端产出）
type SyncOutcome struct {
	UserID         uint64  `json:"user_id"`
	Platform       string  `json:"platform"`
	ProfileID      uint64  `json:"profile_id"`
	Username       string  `json:"username"`
	Followers      int     `json:"followers"`
	PostsSynced    int     `json:"posts_synced"`
	EngagementRate float64 `json:"engagement_rate"`
}
