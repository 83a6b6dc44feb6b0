package parkingclient

import (
	"context"
	"fmt"
	"sync"

	internalmetrics "github.com/amitkrsingh19/parking-client/internal/metrics"

	internalaudit "github.com/amitkrsingh19/parking-client/internal/audit"

	"github.com/amitkrsingh19/parking-client/api"
	"github.com/amitkrsingh19/parking-client/guard"
	"github.com/amitkrsingh19/parking-client/session"
	"github.com/amitkrsingh19/parking-client/store"
	"github.com/amitkrsingh19/parking-client/transport"
)

// Client defines a public type used by parking-client APIs.
//
// Client owns the authenticated session: it hydrates it from the persisted
// store, mutates it through Login/Logout, binds its credential to every
// outbound request, and answers route-guard queries against it. All methods
// are safe for concurrent use after [Client.Initialize].
type Client struct {
	config Config

	mu          sync.Mutex
	store       store.Store
	session     session.Session
	subscribers map[uint64]func(session.Session)
	nextSub     uint64
	initialized bool

	metrics   *internalmetrics.Metrics
	audit     *internalaudit.Dispatcher
	transport *transport.Client

	auth     *api.Auth
	parking  *api.Parking
	bookings *api.Bookings
	admin    *api.Admin

	policy guard.Policy
	routes guard.Table
}

// Initialize describes the initialize operation and its observable behavior.
//
// Initialize hydrates the in-memory session from the persisted store without
// decoding the credential and without any network traffic. Persisted values
// are trusted verbatim; the backend re-validates on first use. Subscribers
// are not notified.
func (c *Client) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	restored, err := c.readStoredSession(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	c.session = restored
	c.initialized = true

	if restored.Authenticated() {
		c.metrics.Inc(internalmetrics.MetricSessionRestored)
		c.emit(ctx, auditEventSessionRestored, restored, true, nil)
	}
	return nil
}

// readStoredSession reads all three slots. Callers hold c.mu.
func (c *Client) readStoredSession(ctx context.Context) (session.Session, error) {
	var s session.Session
	var err error

	if s.Credential, err = c.store.Read(ctx, store.SlotCredential); err != nil {
		return session.Session{}, err
	}
	if s.Identity, err = c.store.Read(ctx, store.SlotIdentity); err != nil {
		return session.Session{}, err
	}
	if s.Role, err = c.store.Read(ctx, store.SlotRole); err != nil {
		return session.Session{}, err
	}
	return s, nil
}

// Session describes the session operation and its observable behavior.
//
// Session returns a copy of the current session value. Before Initialize it
// is the zero (anonymous) session.
func (c *Client) Session() session.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// IsAdmin describes the isadmin operation and its observable behavior.
//
// IsAdmin reports whether the current session carries an administrative role.
func (c *Client) IsAdmin() bool {
	return c.Session().IsAdmin()
}

// Credential returns the current raw credential, or "" for an anonymous
// session. It implements [transport.CredentialSource] for the client's own
// transport.
func (c *Client) Credential() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Credential
}

// Subscribe describes the subscribe operation and its observable behavior.
//
// Subscribe registers fn for synchronous notification after every session
// change settles. By the time fn observes a value, the persisted store
// already reflects it. The returned cancel function unregisters fn and is
// safe to call more than once.
func (c *Client) Subscribe(fn func(session.Session)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers, id)
	}
}

// observers snapshots the subscriber set. Callers hold c.mu; the returned
// functions are invoked after unlocking.
func (c *Client) observers() []func(session.Session) {
	if len(c.subscribers) == 0 {
		return nil
	}
	out := make([]func(session.Session), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		out = append(out, fn)
	}
	return out
}

// Guard describes the guard operation and its observable behavior.
//
// Guard evaluates req against the current session.
func (c *Client) Guard(req guard.Requirement) guard.Decision {
	return c.policy.Decide(req, c.Session())
}

// DecideRoute describes the decideroute operation and its observable behavior.
//
// DecideRoute evaluates the route table entry for path against the current
// session. Paths missing from the table require authentication.
func (c *Client) DecideRoute(path string) guard.Decision {
	return c.policy.DecidePath(c.routes, path, c.Session())
}

// Auth returns the authentication endpoint group.
func (c *Client) Auth() *api.Auth { return c.auth }

// Parking returns the station and slot endpoint group.
func (c *Client) Parking() *api.Parking { return c.parking }

// Bookings returns the reservation endpoint group.
func (c *Client) Bookings() *api.Bookings { return c.bookings }

// Admin returns the station-owner endpoint group.
func (c *Client) Admin() *api.Admin { return c.admin }

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot returns a point-in-time copy of all counters and
// histograms. When metrics are disabled the maps are empty.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped reports how many audit events were discarded under
// backpressure.
func (c *Client) AuditDropped() uint64 {
	return c.audit.Dropped()
}

// Close describes the close operation and its observable behavior.
//
// Close stops the audit dispatcher after draining buffered events. The
// client remains usable for session reads afterwards.
func (c *Client) Close() {
	c.audit.Close()
}

func (c *Client) ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}
