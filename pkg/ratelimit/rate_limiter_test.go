package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketly/pkg/ratelimit"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLimiterConfig() *ratelimit.Config {
	return &ratelimit.Config{
		Enabled:         true,
		WindowDuration:  time.Minute,
		DefaultRequests: 60,
		PublicRequests:  100,
		AuthRequests:    10,
		BookingRequests: 20,
		AdminRequests:   200,
		HealthRequests:  120,
	}
}

// matchAnyEval matches the sliding-window Eval regardless of the timestamp
// arguments baked into each call. redismock still compares argument counts
// before consulting this, so expectations must carry all four script args.
func matchAnyEval(expected, actual []interface{}) error {
	return nil
}

func expectEval(mock redismock.ClientMock, key string) *redismock.ExpectedCmd {
	return mock.CustomMatch(matchAnyEval).
		ExpectEval("", []string{key}, 0, 0, 0, 0)
}

func TestIsAllowed_Disabled(t *testing.T) {
	cfg := testLimiterConfig()
	cfg.Enabled = false

	client, _ := redismock.NewClientMock()
	limiter := ratelimit.NewRateLimiter(client, cfg)

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.1", ratelimit.RateLimitTypeAuth)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, 10, result.Remaining)
}

func TestIsAllowed_WhitelistedIP(t *testing.T) {
	cfg := testLimiterConfig()
	cfg.WhitelistedIPs = []string{"10.0.0.1"}

	client, _ := redismock.NewClientMock()
	limiter := ratelimit.NewRateLimiter(client, cfg)

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.1", ratelimit.RateLimitTypeBooking)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 20, result.Limit)
}

func TestIsAllowed_UnderLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	expectEval(mock, "ticketly:ratelimit:10.0.0.2:booking").
		SetVal([]interface{}{int64(1), int64(19)})

	limiter := ratelimit.NewRateLimiter(client, testLimiterConfig())

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.2", ratelimit.RateLimitTypeBooking)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, 19, result.Remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsAllowed_LastRequestInWindow(t *testing.T) {
	// The request that lands exactly on the limit is still allowed; the
	// script reports zero remaining.
	client, mock := redismock.NewClientMock()
	expectEval(mock, "ticketly:ratelimit:10.0.0.2:booking").
		SetVal([]interface{}{int64(20), int64(0)})

	limiter := ratelimit.NewRateLimiter(client, testLimiterConfig())

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.2", ratelimit.RateLimitTypeBooking)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
}

func TestIsAllowed_OverLimit(t *testing.T) {
	// Over the limit the script rejects with a negative remaining marker.
	client, mock := redismock.NewClientMock()
	expectEval(mock, "ticketly:ratelimit:10.0.0.3:auth").
		SetVal([]interface{}{int64(11), int64(-1)})

	limiter := ratelimit.NewRateLimiter(client, testLimiterConfig())

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.3", ratelimit.RateLimitTypeAuth)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsAllowed_RedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	expectEval(mock, "ticketly:ratelimit:10.0.0.4:default").
		SetErr(errors.New("connection refused"))

	limiter := ratelimit.NewRateLimiter(client, testLimiterConfig())

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.4", ratelimit.RateLimitTypeDefault)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestLimitsPerRouteClass(t *testing.T) {
	cfg := testLimiterConfig()
	cfg.Enabled = false // skip Redis, only inspect the resolved limit

	client, _ := redismock.NewClientMock()
	limiter := ratelimit.NewRateLimiter(client, cfg)

	cases := map[ratelimit.RateLimitType]int{
		ratelimit.RateLimitTypeDefault: 60,
		ratelimit.RateLimitTypePublic:  100,
		ratelimit.RateLimitTypeAuth:    10,
		ratelimit.RateLimitTypeBooking: 20,
		ratelimit.RateLimitTypeAdmin:   200,
		ratelimit.RateLimitTypeHealth:  120,
	}

	for limitType, want := range cases {
		result, err := limiter.IsAllowed(context.Background(), "10.0.0.5", limitType)
		require.NoError(t, err)
		assert.Equal(t, want, result.Limit, "limit for %s", limitType)
	}
}
