package guard

import (
	"github.com/amitkrsingh19/parking-client/session"
)

// Table maps route paths to their requirements.
type Table map[string]Requirement

// DefaultTable is the application's route surface.
func DefaultTable() Table {
	return Table{
		"/":                RequireAuthenticated,
		"/login":           RequirePublicOnly,
		"/register":        RequirePublicOnly,
		"/dashboard":       RequireAuthenticated,
		"/booking":         RequireAuthenticated,
		"/my-bookings":     RequireAuthenticated,
		"/stations":        RequireAuthenticated,
		"/stations/new":    RequireAdmin,
		"/admin/dashboard": RequireAdmin,
		"/admin/slots":     RequireAdmin,
		"/admin/slots/new": RequireAdmin,
	}
}

// DecidePath looks up path in t and applies the policy. Paths missing from
// the table require authentication.
func (p Policy) DecidePath(t Table, path string, s session.Session) Decision {
	req, ok := t[path]
	if !ok {
		req = RequireAuthenticated
	}
	return p.Decide(req, s)
}
