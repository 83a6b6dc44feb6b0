package guard

import (
	"github.com/amitkrsingh19/parking-client/session"
)

// Requirement classifies what a route demands of the session.
type Requirement uint8

const (
	// RequireNone renders for everyone.
	RequireNone Requirement = iota
	// RequirePublicOnly renders only for anonymous sessions; an
	// authenticated user has no business on login/register screens and is
	// sent to the landing route.
	RequirePublicOnly
	// RequireAuthenticated demands a credential.
	RequireAuthenticated
	// RequireAdmin demands a credential and an administrative role.
	RequireAdmin
)

// Decision is the guard outcome: render, or navigate elsewhere.
type Decision struct {
	redirect string
}

// Allow renders the requested route.
func Allow() Decision {
	return Decision{}
}

// Redirect navigates to path instead of rendering.
func Redirect(path string) Decision {
	return Decision{redirect: path}
}

// Allowed reports whether the route may render.
func (d Decision) Allowed() bool {
	return d.redirect == ""
}

// RedirectTo returns the navigation target when the route is denied.
func (d Decision) RedirectTo() (string, bool) {
	return d.redirect, d.redirect != ""
}

// Policy carries the two redirect targets. The zero value is unusable; use
// [DefaultPolicy] or populate both paths.
type Policy struct {
	LoginPath   string
	LandingPath string
}

// DefaultPolicy returns the platform's standard navigation targets.
func DefaultPolicy() Policy {
	return Policy{
		LoginPath:   "/login",
		LandingPath: "/dashboard",
	}
}

// Decide maps (requirement, session) to a Decision.
//
// A failed admin requirement redirects to the landing route, not to login:
// the session may belong to a perfectly valid non-admin user.
func (p Policy) Decide(req Requirement, s session.Session) Decision {
	switch req {
	case RequirePublicOnly:
		if s.Authenticated() {
			return Redirect(p.LandingPath)
		}
		return Allow()
	case RequireAuthenticated:
		if !s.Authenticated() {
			return Redirect(p.LoginPath)
		}
		return Allow()
	case RequireAdmin:
		if !s.Authenticated() || !s.IsAdmin() {
			return Redirect(p.LandingPath)
		}
		return Allow()
	default:
		return Allow()
	}
}
