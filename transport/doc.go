// Package transport is the credential-attaching HTTP layer between the
// client and the parking platform's gateway. It owns exactly two behaviors
// beyond plain HTTP: every outbound request carries the current credential
// as a bearer Authorization header (when one exists), and every 401 response
// forces the session to be cleared — once — before the failure is returned
// to the caller unchanged.
//
// # Architecture boundaries
//
// The transport reads session state only through [CredentialSource] and
// reports authentication failures only through [AuthFailureHandler]; both
// are implemented by the root client. It never interprets response bodies
// beyond JSON decoding into the caller's value.
//
// # What this package must NOT do
//
//   - Retry or back off. A failed request fails.
//   - Decode credentials or make authorization decisions.
//   - Redirect; navigation is the route guard's concern.
package transport
