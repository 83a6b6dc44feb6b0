// Package claims decodes the payload segment of a signed bearer credential
// without verifying its signature. The client trusts the issuing backend;
// decoding exists purely to derive the identity and role shown in the UI.
//
// # Decode totality
//
// Decode never panics. Every malformed input — wrong segment count, invalid
// base64url, non-object JSON — converges to [ErrMalformed] so that callers
// have exactly one failure branch.
//
// # What this package must NOT do
//
//   - Verify signatures or expiry (the backend rejects bad credentials).
//   - Enforce a claims schema beyond "the payload is a JSON object".
package claims
