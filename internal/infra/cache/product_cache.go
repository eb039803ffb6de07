package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"atelier/config"
	"atelier/internal/domain/entity"
	"atelier/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	productKeyPrefix       = "product:"
	defaultProductCacheTTL = 5 * time.Minute
)

type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache uses redis when a client is available and a no-op cache otherwise.
func NewProductCache(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.ProductCache {
	if client == nil {
		return noopProductCache{}
	}

	ttl := defaultProductCacheTTL
	if cfg.Redis != nil && cfg.Redis.CacheTTL > 0 {
		ttl = cfg.Redis.CacheTTL
	}
	logger.Info("Product cache enabled", slog.Duration("ttl", ttl))

	return &redisProductCache{client: client, ttl: ttl}
}

func productKey(id uuid.UUID) string {
	return productKeyPrefix + id.String()
}

func (c *redisProductCache) Get(ctx context.Context, id uuid.UUID) (*entity.Product, bool, error) {
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read product cache")
	}

	var product entity.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode cached product")
	}

	return &product, true, nil
}

func (c *redisProductCache) Set(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, productKey(product.ID), data, c.ttl).Err(), "failed to write product cache")
}

func (c *redisProductCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return errors.Wrap(c.client.Del(ctx, productKey(id)).Err(), "failed to invalidate product cache")
}

type noopProductCache struct{}

func (noopProductCache) Get(context.Context, uuid.UUID) (*entity.Product, bool, error) {
	return nil, false, nil
}

func (noopProductCache) Set(context.Context, *entity.Product) error { return nil }

func (noopProductCache) Invalidate(context.Context, uuid.UUID) error { return nil }
