package parkingclient

import (
	"context"
	"fmt"

	internalmetrics "github.com/amitkrsingh19/parking-client/internal/metrics"

	"github.com/amitkrsingh19/parking-client/claims"
	"github.com/amitkrsingh19/parking-client/session"
	"github.com/amitkrsingh19/parking-client/store"
)

// Login describes the login operation and its observable behavior.
//
// Login exchanges email and password at the gateway and adopts the returned
// credential. A rejected exchange leaves the session untouched; see
// [Client.AdoptCredential] for what adoption entails.
func (c *Client) Login(ctx context.Context, email, password string) error {
	if !c.ready() {
		return ErrClientNotReady
	}

	token, err := c.auth.Login(ctx, email, password)
	if err != nil {
		c.metrics.Inc(internalmetrics.MetricLoginFailure)
		c.emit(ctx, auditEventLogin, c.Session(), false, err)
		return err
	}
	return c.AdoptCredential(ctx, token.AccessToken)
}

// AdoptCredential describes the adoptcredential operation and its observable behavior.
//
// AdoptCredential installs a raw credential as the current session. The
// credential is decoded before anything is persisted; identity and role are
// overwritten only when the claims carry them and keep their previous values
// otherwise. A credential that cannot be decoded is still adopted: the
// backend, not this client, decides its validity. An empty credential is
// rejected with [ErrInvalidCredential] and mutates nothing.
func (c *Client) AdoptCredential(ctx context.Context, credential string) error {
	c.mu.Lock()

	if !c.initialized {
		c.mu.Unlock()
		return ErrClientNotReady
	}
	if credential == "" {
		prev := c.session
		c.mu.Unlock()
		c.metrics.Inc(internalmetrics.MetricLoginFailure)
		c.emit(ctx, auditEventLogin, prev, false, ErrInvalidCredential)
		return ErrInvalidCredential
	}

	next := c.session
	next.Credential = credential

	decoded, decodeErr := claims.Decode(credential)
	if decodeErr == nil {
		if subject, ok := decoded.Subject(); ok {
			next.Identity = subject
		}
		if role, ok := decoded.Role(); ok {
			next.Role = role
		}
	} else {
		c.metrics.Inc(internalmetrics.MetricClaimsDecodeFailure)
		c.emit(ctx, auditEventClaimsDecodeFailed, next, false, decodeErr)
	}

	if err := c.persist(ctx, next); err != nil {
		c.mu.Unlock()
		c.metrics.Inc(internalmetrics.MetricLoginFailure)
		c.emit(ctx, auditEventLogin, next, false, err)
		return err
	}

	c.session = next
	observers := c.observers()
	c.mu.Unlock()

	c.metrics.Inc(internalmetrics.MetricLoginSuccess)
	c.emit(ctx, auditEventLogin, next, true, nil)
	for _, fn := range observers {
		fn(next)
	}
	return nil
}

// persist writes all three slots. Callers hold c.mu; on error the in-memory
// session must not be committed.
func (c *Client) persist(ctx context.Context, s session.Session) error {
	if err := c.store.Write(ctx, store.SlotCredential, s.Credential); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	if err := c.store.Write(ctx, store.SlotIdentity, s.Identity); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	if err := c.store.Write(ctx, store.SlotRole, s.Role); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
