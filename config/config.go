package config

import (
	"strings"
	"time"

	"atelier/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "10MB"
	defaultTokenTTL           = time.Hour
	defaultWorkerPort         = 8081
	defaultReconcileBatchSize = 200
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database struct {
		SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
		// PoolMonitorInterval controls how often pool wait statistics are sampled
		PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
	} `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// PubSub configuration for NFT event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Email *EmailConfig `json:"email" yaml:"email"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Chain *ChainConfig `json:"chain" yaml:"chain"`

	Reconcile *ReconcileConfig `json:"reconcile" yaml:"reconcile"`

	// QRCode configuration for product share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Share *ShareConfig `json:"share" yaml:"share"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig enables the product cache and the shared rate limiter when Addr is set.
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
}

// RateLimitConfig limits requests per client on the authentication routes.
type RateLimitConfig struct {
	// Backend is "redis" or "memory"
	Backend  string        `json:"backend" yaml:"backend"`
	Requests int           `json:"requests" yaml:"requests"`
	Period   time.Duration `json:"period" yaml:"period"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the sync worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// EmailConfig configures the transactional email provider.
type EmailConfig struct {
	Provider         string        `json:"provider" yaml:"provider"`
	APIKey           string        `json:"apiKey" yaml:"apiKey"`
	BaseURL          string        `json:"baseUrl" yaml:"baseUrl"`
	SenderName       string        `json:"senderName" yaml:"senderName"`
	SenderEmail      string        `json:"senderEmail" yaml:"senderEmail"`
	BuyerTemplateID  int64         `json:"buyerTemplateId" yaml:"buyerTemplateId"`
	SellerTemplateID int64         `json:"sellerTemplateId" yaml:"sellerTemplateId"`
	Timeout          time.Duration `json:"timeout" yaml:"timeout"`
}

// StorageConfig points at the blob bucket holding uploaded images.
type StorageConfig struct {
	// BucketURL is a gocloud URL, e.g. s3://bucket?region=us-east-1, file:///tmp/images, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is prefixed to object keys to build client-facing URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxImageSize int64 `json:"maxImageSize" yaml:"maxImageSize"`
}

// ChainConfig configures the Solana RPC reader used by reconciliation.
type ChainConfig struct {
	RPCURL             string        `json:"rpcUrl" yaml:"rpcUrl"`
	MarketplaceProgram string        `json:"marketplaceProgram" yaml:"marketplaceProgram"`
	Timeout            time.Duration `json:"timeout" yaml:"timeout"`
}

// ReconcileConfig drives the scheduled listing reconciliation.
type ReconcileConfig struct {
	// Schedule is a robfig/cron spec, e.g. "@every 5m"
	Schedule  string `json:"schedule" yaml:"schedule"`
	BatchSize int    `json:"batchSize" yaml:"batchSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// ShareConfig holds the public storefront address used in share links.
type ShareConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// Validate reports missing configuration that the service cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SecretKey.Access) == "" {
		return errors.New("secretKey.access is required (set SECRETKEY_ACCESS)")
	}

	if c.Postgres == nil {
		return errors.New("postgres configuration is required")
	}

	if c.RateLimit != nil && c.RateLimit.Backend == constants.RateLimitBackendRedis && (c.Redis == nil || c.Redis.Addr == "") {
		return errors.New("rateLimit.backend redis requires redis.addr")
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Reconcile != nil && cfg.Reconcile.BatchSize <= 0 {
		cfg.Reconcile.BatchSize = defaultReconcileBatchSize
	}
}
