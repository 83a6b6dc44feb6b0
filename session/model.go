package session

// Roles that carry administrative privileges. Any other role value,
// including the empty string, is an ordinary user.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Session defines a public type used by parking-client APIs.
//
// Session instances are value snapshots of authentication state. The zero
// value is the anonymous session. Empty string means absent for all three
// fields.
type Session struct {
	Credential string
	Identity   string
	Role       string
}

// Authenticated reports whether a credential is present.
func (s Session) Authenticated() bool {
	return s.Credential != ""
}

// IsAdmin reports whether the session's role grants administrative access.
// True only for RoleAdmin and RoleSuperAdmin.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin || s.Role == RoleSuperAdmin
}
