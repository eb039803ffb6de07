package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"atelier/config"
	"atelier/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *redisProductCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr(), CacheTTL: ttl}}
	cache, ok := NewProductCache(client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*redisProductCache)
	require.True(t, ok)

	return mr, cache
}

func TestRedisProductCache_RoundTrip(t *testing.T) {
	_, cache := newTestCache(t, time.Minute)
	ctx := context.Background()

	product := &entity.Product{
		ID:        uuid.New(),
		Name:      "Gown",
		Colors:    []string{"Red"},
		Price:     0,
		ImageURLs: [entity.ProductImageSlots]string{"img1"},
	}

	_, hit, err := cache.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, product))

	cached, hit, err := cache.Get(ctx, product.ID)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, product.Name, cached.Name)
	assert.Equal(t, product.ImageURLs, cached.ImageURLs)

	require.NoError(t, cache.Invalidate(ctx, product.ID))
	_, hit, err = cache.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisProductCache_Expires(t *testing.T) {
	mr, cache := newTestCache(t, time.Minute)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Slip"}

	require.NoError(t, cache.Set(ctx, product))
	assert.Equal(t, time.Minute, mr.TTL(productKey(product.ID)))

	mr.FastForward(2 * time.Minute)

	_, hit, err := cache.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisProductCache_CorruptEntry(t *testing.T) {
	mr, cache := newTestCache(t, time.Minute)
	id := uuid.New()
	require.NoError(t, mr.Set(productKey(id), "not-json"))

	_, hit, err := cache.Get(context.Background(), id)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestNewProductCache_WithoutClient(t *testing.T) {
	cache := NewProductCache(nil, &config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New()}

	require.NoError(t, cache.Set(ctx, product))
	_, hit, err := cache.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, cache.Invalidate(ctx, product.ID))
}
