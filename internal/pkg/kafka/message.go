package kafka

// SyncJobMessage 同步任务消息体，task_id 同时作为消费侧的 trace_id
type SyncJobMessage struct {
	TaskID   string `json:"task_id"`
	UserID   uint64 `json:"user_id"`
	Platform string `json:"platform"`
}
