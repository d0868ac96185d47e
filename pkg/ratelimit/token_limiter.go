package ratelimit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// TokenLimiter enforces a per-minute token budget for LLM requests.
// The budget refills continuously at maxPerMinute/60 tokens per second.
type TokenLimiter struct {
	limiter   *rate.Limiter
	maxPerMin int
	now       func() time.Time
}

// NewTokenLimiter creates a limiter allowing maxPerMinute tokens per rolling minute.
// A non-positive limit disables limiting.
func NewTokenLimiter(maxPerMinute int) *TokenLimiter {
	l := &TokenLimiter{maxPerMin: maxPerMinute, now: time.Now}
	if maxPerMinute > 0 {
		l.limiter = rate.NewLimiter(rate.Limit(float64(maxPerMinute)/60), maxPerMinute)
	}
	return l
}

// Wait blocks until n tokens are available or ctx is done.
func (l *TokenLimiter) Wait(ctx context.Context, n int) error {
	if l.limiter == nil {
		return nil
	}
	if n > l.maxPerMin {
		return fmt.Errorf("request needs %d tokens, exceeds per-minute limit %d", n, l.maxPerMin)
	}
	return l.limiter.WaitN(ctx, n)
}

// GetRemaining reports the tokens available right now.
func (l *TokenLimiter) GetRemaining() int {
	if l.limiter == nil {
		return l.maxPerMin
	}
	return int(l.limiter.TokensAt(l.now()))
}
