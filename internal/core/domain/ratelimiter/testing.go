package ratelimiter

import "context"

type FakeRateLimiter struct {
	IsAllowed   bool
	CheckedWith []string
}

func NewFakeRateLimiter(isAllowed bool) *FakeRateLimiter {
	return &FakeRateLimiter{IsAllowed: isAllowed}
}

func (rl *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	rl.CheckedWith = append(rl.CheckedWith, key)
	if rl.IsAllowed {
		return Allowed()
	}
	return NotAllowed()
}
