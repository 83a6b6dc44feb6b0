// Package session defines the client's authoritative view of authentication
// state: the credential issued by the backend and the identity and role
// derived from it.
//
// # Architecture boundaries
//
// Session is a plain value type. All mutation goes through the root
// parkingclient.Client; consumers (route guard, pages) receive copies and
// re-derive whatever they display from the copy.
//
// # What this package must NOT do
//
//   - Decode credentials (that is the claims package).
//   - Touch persistent storage (that is the store package).
package session
