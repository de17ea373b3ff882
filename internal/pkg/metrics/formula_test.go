package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name       string
		followers  int
		engagement int
		want       float64
	}{
		{name: "zero followers", followers: 0, engagement: 100, want: 0},
		{name: "negative followers", followers: -5, engagement: 100, want: 0},
		{name: "normal", followers: 1000, engagement: 100, want: 10.0},
		{name: "zero engagement", followers: 1000, engagement: 0, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EngagementRate(tt.followers, tt.engagement), 1e-9)
		})
	}
}

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     float64
	}{
		{name: "zero previous", current: 100, previous: 0, want: 0},
		{name: "negative previous", current: 100, previous: -1, want: 0},
		{name: "growing", current: 1100, previous: 1000, want: 10.0},
		{name: "shrinking", current: 900, previous: 1000, want: -10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GrowthRate(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestProjectedFollowers(t *testing.T) {
	tests := []struct {
		name    string
		current int
		rate    float64
		days    int
		want    int
	}{
		// 1000 * 1.01^30 = 1347.84…，向零截断
		{name: "positive growth 30d", current: 1000, rate: 1.0, days: 30, want: 1347},
		{name: "flat 30d", current: 1000, rate: 0.0, days: 30, want: 1000},
		// 1000 * 0.99^30 = 739.70…
		{name: "negative growth 30d", current: 1000, rate: -1.0, days: 30, want: 739},
		{name: "long horizon keeps daily rate", current: 1000, rate: 1.0, days: 90, want: 2448},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectedFollowers(tt.current, tt.rate, tt.days))
		})
	}
}
