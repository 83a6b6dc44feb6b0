package parkingclient

import (
	"context"
	"time"

	internalaudit "github.com/amitkrsingh19/parking-client/internal/audit"

	"github.com/amitkrsingh19/parking-client/session"
)

// Audit event types emitted by the session controller.
const (
	auditEventLogin              = "login"
	auditEventLogout             = "logout"
	auditEventForcedLogout       = "forced_logout"
	auditEventSessionRestored    = "session_restored"
	auditEventClaimsDecodeFailed = "claims_decode_failed"
)

// emit forwards one event to the dispatcher. Identity and Role reflect the
// session the event is about, not necessarily the committed one.
func (c *Client) emit(ctx context.Context, eventType string, s session.Session, success bool, opErr error) {
	event := internalaudit.Event{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Identity:  s.Identity,
		Role:      s.Role,
		Success:   success,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}
	c.audit.Emit(ctx, event)
}
