package parkingclient

import (
	"context"
	"fmt"

	internalmetrics "github.com/amitkrsingh19/parking-client/internal/metrics"

	"github.com/amitkrsingh19/parking-client/session"
)

// Logout describes the logout operation and its observable behavior.
//
// Logout clears the persisted store and the in-memory session completely.
// It is idempotent; logging out an anonymous session is a no-op apart from
// the metric. The in-memory session is zeroed even when the store clear
// fails, and the store error is then returned.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return ErrClientNotReady
	}
	return c.logoutLocked(ctx, false)
}

// HandleAuthFailure performs the forced logout behind every 401 response.
// It implements [transport.AuthFailureHandler] for the client's own
// transport and runs before the request error reaches the caller.
func (c *Client) HandleAuthFailure(ctx context.Context) {
	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return
	}
	_ = c.logoutLocked(ctx, true)
}

// logoutLocked is entered holding c.mu and releases it before notifying.
func (c *Client) logoutLocked(ctx context.Context, forced bool) error {
	prev := c.session

	clearErr := c.store.Clear(ctx)
	c.session = session.Session{}
	observers := c.observers()
	c.mu.Unlock()

	if forced {
		c.metrics.Inc(internalmetrics.MetricForcedLogout)
	} else {
		c.metrics.Inc(internalmetrics.MetricLogout)
	}
	if prev.Authenticated() {
		eventType := auditEventLogout
		if forced {
			eventType = auditEventForcedLogout
		}
		c.emit(ctx, eventType, prev, clearErr == nil, clearErr)
	}

	for _, fn := range observers {
		fn(session.Session{})
	}

	if clearErr != nil {
		return fmt.Errorf("clear session: %w", clearErr)
	}
	return nil
}
