package apify

import (
	"context"
	"sync"
	"time"
)

// rateGate 保证对外部接口的请求间隔不低于 interval，
// 多个调用方并发时按到达顺序排队
type rateGate struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

func newRateGate(interval time.Duration) *rateGate {
	return &rateGate{interval: interval}
}

func (g *rateGate) wait(ctx context.Context) error {
	g.mu.Lock()
	now := time.Now()
	slot := g.next
	if slot.Before(now) {
		slot = now
	}
	g.next = slot.Add(g.interval)
	g.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
