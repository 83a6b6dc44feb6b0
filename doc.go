// Package parkingclient provides the client-side session layer of the
// parking-reservation platform: credential persistence across restarts,
// claims-derived identity, route authorization decisions, and an HTTP
// transport that binds the credential to every outbound request.
//
// The package is designed for concurrent UI-driven workloads: Client methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// parkingclient is the public surface. It exposes [Client], [Builder],
// [Config], the sentinel errors, and value types (MetricsSnapshot,
// AuditEvent, etc.). Subpackages own one concern each: claims decoding,
// session persistence, route guarding, transport, and the endpoint
// catalogue. Audit dispatch and metrics live under internal/ and are never
// exported directly.
//
// # What this package must NOT do
//
//   - Verify credential signatures or expiry; the backend is the sole
//     authority and rejects stale credentials with 401.
//   - Compute prices, availability, or any other business outcome.
//   - Perform I/O outside of Client methods (construction via Builder is
//     allocation-only until Build).
//
// # Trust contract
//
// Persisted session values are restored verbatim on Initialize without
// decoding or network calls. A locally tampered role only changes what the
// route guard renders; every privileged request still fails server-side.
package parkingclient
