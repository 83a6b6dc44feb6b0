// Package store persists session state across application restarts. It holds
// exactly three logical slots — credential, identity, role — under key names
// that are an external contract and must never change.
//
// # Set-or-delete
//
// Writing an empty value deletes the slot's key. No slot is ever left holding
// an empty string, which lets readers treat "" as an unambiguous absence
// marker without a sentinel error.
//
// # Backends
//
//   - [Redis] — shared durable storage (go-redis), namespaced by prefix.
//   - [File] — single JSON document with atomic replace, for a local
//     per-context installation.
//   - [Memory] — volatile, for tests and examples.
//
// # What this package must NOT do
//
//   - Interpret slot contents. The credential is opaque here.
//   - Be read by anything other than the session controller; every other
//     component consumes the controller's in-memory view.
package store
