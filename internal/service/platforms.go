package service

import (
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/consts"
)

// PlatformSpec 描述单个平台的同步口径：账号字段来源、有哪些计数、评分权重。
// 三个平台的同步流程完全一致，差异全部收敛在这里
type PlatformSpec struct {
	Name string
	// Handle 从用户记录中取出该平台的账号名，未配置返回 nil
	Handle func(u *model.User) *string
	// HasShares 平台是否提供转发/分享计数
	HasShares bool
	// HasViews 平台是否提供播放量，决定是否产出触达记录与触达评分
	HasViews bool

	EngagementWeight float64
	GrowthWeight     float64
	ReachWeight      float64
}

// PlatformRegistry 平台注册表，遍历顺序固定
type PlatformRegistry struct {
	order []string
	specs map[string]PlatformSpec
}

func NewPlatformRegistry(specs ...PlatformSpec) *PlatformRegistry {
	r := &PlatformRegistry{specs: make(map[string]PlatformSpec, len(specs))}
	for _, spec := range specs {
		r.order = append(r.order, spec.Name)
		r.specs[spec.Name] = spec
	}
	return r
}

// DefaultPlatformRegistry 生产配置。双分量平台权重 0.6/0.4，
// 视频平台引入触达后为 0.5/0.3/0.2
func DefaultPlatformRegistry() *PlatformRegistry {
	return NewPlatformRegistry(
		PlatformSpec{
			Name:             consts.PlatformInstagram,
			Handle:           func(u *model.User) *string { return u.InstagramUsername },
			EngagementWeight: 0.6,
			GrowthWeight:     0.4,
		},
		PlatformSpec{
			Name:             consts.PlatformFacebook,
			Handle:           func(u *model.User) *string { return u.FacebookUsername },
			HasShares:        true,
			EngagementWeight: 0.6,
			GrowthWeight:     0.4,
		},
		PlatformSpec{
			Name:             consts.PlatformTiktok,
			Handle:           func(u *model.User) *string { return u.TiktokUsername },
			HasShares:        true,
			HasViews:         true,
			EngagementWeight: 0.5,
			GrowthWeight:     0.3,
			ReachWeight:      0.2,
		},
	)
}

func (r *PlatformRegistry) Get(name string) (PlatformSpec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

// Names 返回注册顺序的平台名列表
func (r *PlatformRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
