// Package guard decides, per route and session, whether to render or
// redirect. It is a pure function over its inputs: the guard holds no state
// and must be re-evaluated on every navigation and every session change.
//
// Under-privileged access always redirects, never errors: anonymous users go
// to the login route, authenticated non-admins go to the landing route.
package guard
