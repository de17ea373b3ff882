package apify

import (
	"SocialPulse/internal/pkg/consts"
	"time"
)

const (
	igTimeLayout = "2006-01-02T15:04:05.000Z"
	fbTimeLayout = "2006-01-02 15:04:05"
)

type igProfileItem struct {
	Username       string `json:"username"`
	FullName       string `json:"fullName"`
	Biography      string `json:"biography"`
	ProfilePicture string `json:"profilePicture"`
	FollowersCount int    `json:"followersCount"`
	FollowsCount   int    `json:"followsCount"`
	PostsCount     int    `json:"postsCount"`
}

type igPostItem struct {
	ID            string `json:"id"`
	Caption       string `json:"caption"`
	URL           string `json:"url"`
	DisplayURL    string `json:"displayUrl"`
	Timestamp     string `json:"timestamp"`
	Type          string `json:"type"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
}

type fbPageItem struct {
	Username       string       `json:"username"`
	Name           string       `json:"name"`
	About          string       `json:"about"`
	ProfilePicture string       `json:"profilePicture"`
	Likes          int          `json:"likes"`
	PostsCount     int          `json:"postsCount"`
	Posts          []fbPostItem `json:"posts"`
}

type fbPostItem struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	URL           string `json:"url"`
	ImageURL      string `json:"imageUrl"`
	Date          string `json:"date"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
	SharesCount   int    `json:"sharesCount"`
}

type ttAccountItem struct {
	User  ttUser        `json:"user"`
	Items []ttVideoItem `json:"items"`
}

type ttUser struct {
	UniqueID     string  `json:"uniqueId"`
	Nickname     string  `json:"nickname"`
	Signature    string  `json:"signature"`
	AvatarMedium string  `json:"avatarMedium"`
	Stats        ttStats `json:"stats"`
}

type ttStats struct {
	FollowerCount  int `json:"followerCount"`
	FollowingCount int `json:"followingCount"`
	VideoCount     int `json:"videoCount"`
}

type ttVideoItem struct {
	ID         string       `json:"id"`
	Desc       string       `json:"desc"`
	CreateTime int64        `json:"createTime"`
	Video      ttVideoMeta  `json:"video"`
	Stats      ttVideoStats `json:"stats"`
}

type ttVideoMeta struct {
	DownloadAddr string `json:"downloadAddr"`
}

type ttVideoStats struct {
	DiggCount    int `json:"diggCount"`
	CommentCount int `json:"commentCount"`
	ShareCount   int `json:"shareCount"`
	PlayCount    int `json:"playCount"`
}

// parseTime 时间格式不合法时返回 nil，不让单条脏数据拖垮整个批次
func parseTime(layout string, value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return nil
	}
	return &t
}

func normalizeInstagram(handle string, profiles []igProfileItem, posts []igPostItem) *AccountData {
	data := &AccountData{}

	data.Profile = ProfileSnapshot{
		Username:   handle,
		ProfileURL: "https://www.instagram.com/" + handle + "/",
	}
	if len(profiles) > 0 {
		p := profiles[0]
		if p.Username != "" {
			data.Profile.Username = p.Username
		}
		data.Profile.FullName = p.FullName
		data.Profile.Bio = p.Biography
		data.Profile.AvatarURL = p.ProfilePicture
		data.Profile.Followers = p.FollowersCount
		data.Profile.Following = p.FollowsCount
		data.Profile.PostsCount = p.PostsCount
	}

	for _, post := range posts {
		contentType := consts.ContentTypeImage
		switch post.Type {
		case "Video":
			contentType = consts.ContentTypeVideo
		case "Sidecar":
			contentType = consts.ContentTypeCarousel
		}

		data.Posts = append(data.Posts, PostItem{
			PostID:      post.ID,
			Content:     post.Caption,
			PostURL:     post.URL,
			MediaURL:    post.DisplayURL,
			ContentType: contentType,
			PostedAt:    parseTime(igTimeLayout, post.Timestamp),
			Likes:       post.LikesCount,
			Comments:    post.CommentsCount,
		})
	}

	return data
}

func normalizeFacebook(handle string, pages []fbPageItem) *AccountData {
	data := &AccountData{}

	data.Profile = ProfileSnapshot{
		Username:   handle,
		ProfileURL: "https://www.facebook.com/" + handle + "/",
	}
	if len(pages) == 0 {
		return data
	}

	page := pages[0]
	if page.Username != "" {
		data.Profile.Username = page.Username
	}
	data.Profile.FullName = page.Name
	data.Profile.Bio = page.About
	data.Profile.AvatarURL = page.ProfilePicture
	// 主页没有独立的 followers 字段，按点赞数口径统计
	data.Profile.Followers = page.Likes
	data.Profile.PostsCount = page.PostsCount

	for _, post := range page.Posts {
		contentType := consts.ContentTypeText
		if post.ImageURL != "" {
			contentType = consts.ContentTypeImage
		}

		data.Posts = append(data.Posts, PostItem{
			PostID:      post.ID,
			Content:     post.Text,
			PostURL:     post.URL,
			MediaURL:    post.ImageURL,
			ContentType: contentType,
			PostedAt:    parseTime(fbTimeLayout, post.Date),
			Likes:       post.LikesCount,
			Comments:    post.CommentsCount,
			Shares:      post.SharesCount,
		})
	}

	return data
}

func normalizeTiktok(handle string, accounts []ttAccountItem) *AccountData {
	data := &AccountData{}

	data.Profile = ProfileSnapshot{
		Username:   handle,
		ProfileURL: "https://www.tiktok.com/@" + handle + "/",
	}
	if len(accounts) == 0 {
		return data
	}

	account := accounts[0]
	if account.User.UniqueID != "" {
		data.Profile.Username = account.User.UniqueID
	}
	data.Profile.FullName = account.User.Nickname
	data.Profile.Bio = account.User.Signature
	data.Profile.AvatarURL = account.User.AvatarMedium
	data.Profile.Followers = account.User.Stats.FollowerCount
	data.Profile.Following = account.User.Stats.FollowingCount
	data.Profile.PostsCount = account.User.Stats.VideoCount

	for _, video := range account.Items {
		var postedAt *time.Time
		if video.CreateTime > 0 {
			t := time.Unix(video.CreateTime, 0)
			postedAt = &t
		}

		data.Posts = append(data.Posts, PostItem{
			PostID:      video.ID,
			Content:     video.Desc,
			PostURL:     "https://www.tiktok.com/@" + handle + "/video/" + video.ID,
			MediaURL:    video.Video.DownloadAddr,
			ContentType: consts.ContentTypeVideo,
			PostedAt:    postedAt,
			Likes:       video.Stats.DiggCount,
			Comments:    video.Stats.CommentCount,
			Shares:      video.Stats.ShareCount,
			Views:       video.Stats.PlayCount,
		})
	}

	return data
}
