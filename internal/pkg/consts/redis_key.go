package consts

const (
	ProfileMetrics7DaysKey  = "profile:metrics:7days:"
	ProfileMetrics30DaysKey = "profile:metrics:30days:"
)

const (
	ProfileSyncLock = "profile:sync:lock:"
)
