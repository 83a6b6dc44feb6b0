package parkingclient

import (
	"errors"
	"net/http"

	internalaudit "github.com/amitkrsingh19/parking-client/internal/audit"
	internalmetrics "github.com/amitkrsingh19/parking-client/internal/metrics"

	"github.com/amitkrsingh19/parking-client/api"
	"github.com/amitkrsingh19/parking-client/guard"
	"github.com/amitkrsingh19/parking-client/session"
	"github.com/amitkrsingh19/parking-client/store"
	"github.com/amitkrsingh19/parking-client/transport"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by parking-client APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	store      store.Store
	redis      *redis.Client
	httpClient *http.Client

	routes    guard.Table
	auditSink AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithStore describes the withstore operation and its observable behavior.
//
// WithStore may return an error when input validation, dependency calls, or security checks fail.
// WithStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithStore(s store.Store) *Builder {
	b.store = s
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis may return an error when input validation, dependency calls, or security checks fail.
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithHTTPClient describes the withhttpclient operation and its observable behavior.
//
// WithHTTPClient may return an error when input validation, dependency calls, or security checks fail.
// WithHTTPClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithRoutes describes the withroutes operation and its observable behavior.
//
// WithRoutes may return an error when input validation, dependency calls, or security checks fail.
// WithRoutes does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRoutes(t guard.Table) *Builder {
	b.routes = t
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// -------- SESSION STORE --------
	sessionStore := b.store
	if sessionStore == nil && b.redis != nil {
		sessionStore = store.NewRedis(b.redis, cfg.Storage.RedisPrefix)
	}
	if sessionStore == nil && cfg.Storage.FilePath != "" {
		sessionStore = store.NewFile(cfg.Storage.FilePath)
	}
	if sessionStore == nil {
		return nil, errors.New("session store required")
	}

	routes := b.routes
	if routes == nil {
		routes = guard.DefaultTable()
	}

	client := &Client{
		config:      cfg,
		store:       sessionStore,
		subscribers: make(map[uint64]func(session.Session)),
		policy: guard.Policy{
			LoginPath:   cfg.Routes.LoginPath,
			LandingPath: cfg.Routes.LandingPath,
		},
		routes: routes,
	}

	client.metrics = internalmetrics.New(internalmetrics.Config{
		Enabled:       cfg.Metrics.Enabled,
		EnableLatency: cfg.Metrics.EnableLatencyHistograms,
	})
	client.audit = internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    cfg.Audit.Enabled,
		BufferSize: cfg.Audit.BufferSize,
		DropIfFull: cfg.Audit.DropIfFull,
	}, b.auditSink)

	// The client is both the credential source and the auth-failure handler
	// for its own transport.
	tc, err := transport.NewClient(transport.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}, client, client, b.httpClient, client.metrics)
	if err != nil {
		return nil, err
	}
	client.transport = tc

	client.auth = api.NewAuth(tc)
	client.parking = api.NewParking(tc)
	client.bookings = api.NewBookings(tc)
	client.admin = api.NewAdmin(tc)

	b.built = true

	return client, nil
}
