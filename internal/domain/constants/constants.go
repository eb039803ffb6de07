// Package constants contains values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Rate limiter backends.
const (
	RateLimitBackendRedis  = "redis"
	RateLimitBackendMemory = "memory"
)

// Email providers.
const (
	EmailProviderBrevo = "brevo"
	EmailProviderNoop  = "noop"
)

// CategoryDresses is the category served by the dresses landing page.
const CategoryDresses = "Dresses"
