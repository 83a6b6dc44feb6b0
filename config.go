package parkingclient

import (
	"errors"
	"strings"
	"time"

	"github.com/amitkrsingh19/parking-client/guard"
	"github.com/amitkrsingh19/parking-client/store"
	"github.com/amitkrsingh19/parking-client/transport"
)

// Config defines a public type used by parking-client APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Routes  RoutesConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by parking-client APIs.
//
// APIConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig defines a public type used by parking-client APIs.
//
// StorageConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StorageConfig struct {
	// RedisPrefix namespaces the session slots when a redis client is
	// supplied via Builder.WithRedis.
	RedisPrefix string
	// FilePath, when set and no other store is supplied, selects the
	// file-backed store at that path.
	FilePath string
}

/*
====================================
ROUTES CONFIG
====================================
*/

// RoutesConfig defines a public type used by parking-client APIs.
//
// RoutesConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RoutesConfig struct {
	LoginPath   string
	LandingPath string
}

// AuditConfig defines a public type used by parking-client APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by parking-client APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	policy := guard.DefaultPolicy()

	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: transport.DefaultTimeout,
		},
		Storage: StorageConfig{
			RedisPrefix: store.DefaultRedisPrefix,
		},
		Routes: RoutesConfig{
			LoginPath:   policy.LoginPath,
			LandingPath: policy.LandingPath,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig may return an error when input validation, dependency calls, or security checks fail.
// DefaultConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultConfig() Config {
	return defaultConfig()
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// API
	if c.API.BaseURL == "" {
		return errors.New("API BaseURL is required")
	}
	if c.API.Timeout < 0 {
		return errors.New("API Timeout must be >= 0")
	}

	// Routes
	if !strings.HasPrefix(c.Routes.LoginPath, "/") {
		return errors.New("Routes LoginPath must start with '/'")
	}
	if !strings.HasPrefix(c.Routes.LandingPath, "/") {
		return errors.New("Routes LandingPath must start with '/'")
	}

	// Audit
	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	return nil
}
