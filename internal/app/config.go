package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (NEX_ prefix), flags, or YAML config files.
type Config struct {
	Addr            string        `default:"0.0.0.0:8080" usage:"API server listen address"`
	NotificationTTL time.Duration `default:"3s" usage:"How long a feedback notification stays visible" flag:"notification-ttl"`
	APIKeyPepper    string        `usage:"HMAC pepper for API key hashing (NEX_API_KEY_PEPPER)" flag:"api-key-pepper"`
	APIKeyHashes    []string      `usage:"Hex HMAC-SHA256 digests of accepted API keys; empty disables the guard" flag:"api-key-hashes"`
	Session         SessionConfig
	RateLimit       RateLimitConfig
	CORS            CORSConfig
	Graceful        GracefulConfig
}

// SessionConfig controls session lifecycle.
type SessionConfig struct {
	MaxIdle         time.Duration `default:"30m" usage:"Idle time after which a session is evicted" flag:"session-max-idle"`
	CleanupInterval time.Duration `default:"5m" usage:"How often idle sessions are swept" flag:"session-cleanup-interval"`
}

// RateLimitConfig controls the per-client rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files, and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "NEX",
		Files:     []string{"config.yaml", "/etc/nexchain/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()
	return &cfg, nil
}

// applyPlatformDefaults maps platform-provided environment variables (Railway,
// Render, etc.) that use standard names like PORT to the application's
// NEX_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
