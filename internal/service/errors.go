package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrProfileNotFound      = errors.New("社媒主页不存在")
	ErrHandleNotConfigured  = errors.New("用户未配置该平台账号")
	ErrPlatformNotSupported = errors.New("不支持的平台")
	ErrGoalNotFound         = errors.New("增长目标不存在")
	UnauthorizedError       = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrProfileNotFound:      NotFound,
	ErrHandleNotConfigured:  BadRequest,
	ErrPlatformNotSupported: BadRequest,
	ErrGoalNotFound:         NotFound,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}
