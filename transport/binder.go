package transport

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// CredentialSource supplies the credential attached to outbound requests.
// An empty string sends the request unauthenticated.
type CredentialSource interface {
	Credential() string
}

// AuthFailureHandler is invoked exactly once per 401 response, before the
// failure is surfaced to the caller.
type AuthFailureHandler interface {
	HandleAuthFailure(ctx context.Context)
}

// Binder is an http.RoundTripper that attaches the current credential and a
// request-correlation ID to every outbound request.
type Binder struct {
	source CredentialSource
	next   http.RoundTripper
}

// NewBinder wraps next with credential binding. A nil next falls back to
// http.DefaultTransport.
func NewBinder(source CredentialSource, next http.RoundTripper) *Binder {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Binder{source: source, next: next}
}

// RoundTrip implements http.RoundTripper. The incoming request is cloned
// before mutation, per the RoundTripper contract.
func (b *Binder) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	if b.source != nil {
		if credential := b.source.Credential(); credential != "" {
			out.Header.Set("Authorization", "Bearer "+credential)
		}
	}
	if out.Header.Get("X-Request-ID") == "" {
		out.Header.Set("X-Request-ID", uuid.NewString())
	}

	return b.next.RoundTrip(out)
}
