package ratelimiting

import (
	"context"
	"orderping/internal/core/domain/logging"
	"orderping/internal/core/domain/ratelimiter"
	"testing"

	"github.com/stretchr/testify/require"
)

type input struct{}

func (i input) GetRateLimitKey() string {
	return "test-rate-limiting-key"
}

type result struct{}

type stubService struct {
	WasCalled bool
}

func (s *stubService) Run(ctx context.Context, input input) (result result, err error) {
	s.WasCalled = true
	return result, nil
}

func TestInnerServiceCalledIfAllowed(t *testing.T) {
	// Setup ---
	inner := &stubService{}
	service := WithRateLimiting[input, result](
		logging.NewFakeLogger(),
		ratelimiter.NewFakeRateLimiter(true),
		ratelimiter.Limit{Value: 10, Interval: ratelimiter.Minute},
		inner,
	)

	// Exercise ---
	_, err := service.Run(context.Background(), input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.True(inner.WasCalled)
}

func TestInnerServiceNotCalledIfNotAllowed(t *testing.T) {
	// Setup ---
	inner := &stubService{}
	limiter := ratelimiter.NewFakeRateLimiter(false)
	service := WithRateLimiting[input, result](
		logging.NewFakeLogger(),
		limiter,
		ratelimiter.Limit{Value: 10, Interval: ratelimiter.Minute},
		inner,
	)

	// Exercise ---
	_, err := service.Run(context.Background(), input{})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, ratelimiter.ErrRateLimitExceeded)
	assert.False(inner.WasCalled)
	assert.Equal([]string{"test-rate-limiting-key"}, limiter.CheckedWith)
}
