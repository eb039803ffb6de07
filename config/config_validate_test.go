package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{Postgres: &postgres.DBConn{}}
	cfg.SecretKey.Access = "super-secret"

	return cfg
}

func TestValidate_RequiresAccessSecret(t *testing.T) {
	cfg := validConfig()
	cfg.SecretKey.Access = "   "

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secretKey.access")
}

func TestValidate_RequiresPostgres(t *testing.T) {
	cfg := validConfig()
	cfg.Postgres = nil

	require.Error(t, cfg.Validate())
}

func TestValidate_RedisRateLimitNeedsAddr(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit = &RateLimitConfig{Backend: "redis", Requests: 5, Period: time.Minute}

	require.Error(t, cfg.Validate())

	cfg.Redis = &RedisConfig{Addr: "localhost:6379"}
	require.NoError(t, cfg.Validate())
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Reconcile = &ReconcileConfig{Schedule: "@every 5m"}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultReconcileBatchSize, cfg.Reconcile.BatchSize)
}
