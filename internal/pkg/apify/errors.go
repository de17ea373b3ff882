package apify

import (
	"errors"
	"fmt"
)

// ErrExternalAPI 是所有抓取侧错误的根错误，调用方用 errors.Is 判断
var (
	ErrExternalAPI   = errors.New("外部抓取服务异常")
	ErrRequestFailed = fmt.Errorf("%w: 请求失败", ErrExternalAPI)
	ErrRunFailed     = fmt.Errorf("%w: 抓取任务执行失败", ErrExternalAPI)
	ErrRunTimeout    = fmt.Errorf("%w: 抓取任务超时", ErrExternalAPI)
)
