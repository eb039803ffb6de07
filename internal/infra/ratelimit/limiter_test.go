package ratelimit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"atelier/config"
	"atelier/internal/domain/constants"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLimiter_FixedWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	limiter := NewRedisLimiter(client, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed, "keys are limited independently")

	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"10.0.0.1"))
	mr.FastForward(time.Minute + time.Second)

	allowed, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed, "a new window starts after expiry")
}

func TestRedisLimiter_BackendDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	_, err := NewRedisLimiter(client, 1, time.Minute).Allow(context.Background(), "k")
	assert.Error(t, err)
}

func TestMemoryLimiter_Burst(t *testing.T) {
	limiter := NewMemoryLimiter(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "other")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestNewRateLimiter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	limiter, err := NewRateLimiter(&config.Config{}, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &memoryLimiter{}, limiter)

	_, err = NewRateLimiter(&config.Config{RateLimit: &config.RateLimitConfig{Backend: constants.RateLimitBackendRedis}}, nil, logger)
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	limiter, err = NewRateLimiter(&config.Config{RateLimit: &config.RateLimitConfig{Backend: constants.RateLimitBackendRedis}}, client, logger)
	require.NoError(t, err)
	assert.IsType(t, &redisLimiter{}, limiter)

	_, err = NewRateLimiter(&config.Config{RateLimit: &config.RateLimitConfig{Backend: "etcd"}}, nil, logger)
	assert.ErrorContains(t, err, "unknown rate limit backend")
}
