package consts

const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformTiktok    = "tiktok"
)

const (
	ContentTypeImage    = "image"
	ContentTypeVideo    = "video"
	ContentTypeText     = "text"
	ContentTypeCarousel = "carousel"
)

const (
	DefaultPostsLimit = 30
)
