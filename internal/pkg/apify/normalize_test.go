package apify

import (
	"SocialPulse/internal/pkg/consts"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInstagram(t *testing.T) {
	profiles := []igProfileItem{
		{
			Username:       "alice",
			FullName:       "Alice",
			Biography:      "hello",
			FollowersCount: 1200,
			FollowsCount:   300,
			PostsCount:     45,
		},
	}
	posts := []igPostItem{
		{
			ID:            "p1",
			Caption:       "first",
			Timestamp:     "2026-08-30T10:00:00.000Z",
			Type:          "Sidecar",
			LikesCount:    10,
			CommentsCount: 2,
		},
		{
			ID:        "p2",
			Timestamp: "not-a-date",
			Type:      "Video",
		},
	}

	data := normalizeInstagram("alice", profiles, posts)

	assert.Equal(t, "alice", data.Profile.Username)
	assert.Equal(t, 1200, data.Profile.Followers)
	assert.Equal(t, 300, data.Profile.Following)
	assert.Equal(t, "https://www.instagram.com/alice/", data.Profile.ProfileURL)

	require.Len(t, data.Posts, 2)
	assert.Equal(t, consts.ContentTypeCarousel, data.Posts[0].ContentType)
	require.NotNil(t, data.Posts[0].PostedAt)
	assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), data.Posts[0].PostedAt.UTC())
	// 脏时间戳不报错，置空即可
	assert.Nil(t, data.Posts[1].PostedAt)
	assert.Equal(t, consts.ContentTypeVideo, data.Posts[1].ContentType)
}

func TestNormalizeInstagramEmptyDataset(t *testing.T) {
	data := normalizeInstagram("alice", nil, nil)

	assert.Equal(t, "alice", data.Profile.Username)
	assert.Zero(t, data.Profile.Followers)
	assert.Empty(t, data.Posts)
}

func TestNormalizeFacebookLikesAsFollowers(t *testing.T) {
	pages := []fbPageItem{
		{
			Username: "acme",
			Name:     "Acme Inc",
			Likes:    8800,
			Posts: []fbPostItem{
				{ID: "f1", Text: "promo", ImageURL: "https://img/1.jpg", Date: "2026-08-30 18:30:00", LikesCount: 5, CommentsCount: 1, SharesCount: 2},
				{ID: "f2", Text: "plain"},
			},
		},
	}

	data := normalizeFacebook("acme", pages)

	assert.Equal(t, 8800, data.Profile.Followers)
	require.Len(t, data.Posts, 2)
	assert.Equal(t, consts.ContentTypeImage, data.Posts[0].ContentType)
	assert.Equal(t, consts.ContentTypeText, data.Posts[1].ContentType)
	require.NotNil(t, data.Posts[0].PostedAt)
	assert.Equal(t, 2, data.Posts[0].Shares)
	assert.Nil(t, data.Posts[1].PostedAt)
}

func TestNormalizeTiktok(t *testing.T) {
	accounts := []ttAccountItem{
		{
			User: ttUser{
				UniqueID: "bob",
				Nickname: "Bob",
				Stats:    ttStats{FollowerCount: 5000, FollowingCount: 12, VideoCount: 88},
			},
			Items: []ttVideoItem{
				{
					ID:         "v1",
					Desc:       "dance",
					CreateTime: 1756500000,
					Stats:      ttVideoStats{DiggCount: 100, CommentCount: 20, ShareCount: 5, PlayCount: 9000},
				},
			},
		},
	}

	data := normalizeTiktok("bob", accounts)

	assert.Equal(t, 5000, data.Profile.Followers)
	assert.Equal(t, 88, data.Profile.PostsCount)

	require.Len(t, data.Posts, 1)
	post := data.Posts[0]
	assert.Equal(t, consts.ContentTypeVideo, post.ContentType)
	assert.Equal(t, "https://www.tiktok.com/@bob/video/v1", post.PostURL)
	assert.Equal(t, 9000, post.Views)
	require.NotNil(t, post.PostedAt)
	assert.Equal(t, time.Unix(1756500000, 0).Unix(), post.PostedAt.Unix())
}
