// Package ratelimit counts requests per client key.
package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"atelier/config"
	"atelier/internal/domain/constants"
	"atelier/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	defaultRequests = 10
	defaultPeriod   = time.Minute
	keyPrefix       = "rate_limit:"
	// maxMemoryKeys bounds the in-process limiter table.
	maxMemoryKeys = 10000
)

// NewRateLimiter picks the backend from configuration. The redis backend is shared by every API
// replica; the memory backend limits each process independently.
func NewRateLimiter(cfg *config.Config, client *redis.Client, logger *slog.Logger) (service.RateLimiter, error) {
	requests, period := defaultRequests, defaultPeriod
	backend := constants.RateLimitBackendMemory
	if rl := cfg.RateLimit; rl != nil {
		if rl.Requests > 0 {
			requests = rl.Requests
		}
		if rl.Period > 0 {
			period = rl.Period
		}
		if rl.Backend != "" {
			backend = rl.Backend
		}
	}

	switch backend {
	case constants.RateLimitBackendRedis:
		if client == nil {
			return nil, errors.New("redis rate limiter requires a redis client")
		}
		logger.Info("Using redis rate limiter", slog.Int("requests", requests), slog.Duration("period", period))

		return NewRedisLimiter(client, requests, period), nil
	case constants.RateLimitBackendMemory:
		logger.Info("Using in-process rate limiter", slog.Int("requests", requests), slog.Duration("period", period))

		return NewMemoryLimiter(requests, period), nil
	default:
		return nil, errors.Errorf("unknown rate limit backend: %s", backend)
	}
}

type redisLimiter struct {
	client   *redis.Client
	requests int64
	period   time.Duration
}

// NewRedisLimiter allows requests per fixed window of length period.
func NewRedisLimiter(client *redis.Client, requests int, period time.Duration) service.RateLimiter {
	return &redisLimiter{client: client, requests: int64(requests), period: period}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := keyPrefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to increment rate counter")
	}
	// First hit of the window starts its expiry.
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.period).Err(); err != nil {
			return false, errors.Wrap(err, "failed to set rate window")
		}
	}

	return count <= l.requests, nil
}

type memoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewMemoryLimiter is a token bucket per key refilling requests tokens every period.
func NewMemoryLimiter(requests int, period time.Duration) service.RateLimiter {
	return &memoryLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(period / time.Duration(requests)),
		burst:    requests,
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.limiter(key).Allow(), nil
}

func (l *memoryLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= maxMemoryKeys {
			l.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}

	return limiter
}
