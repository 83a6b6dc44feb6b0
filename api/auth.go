package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/amitkrsingh19/parking-client/transport"
)

// Auth covers the authentication endpoints.
type Auth struct {
	t *transport.Client
}

// NewAuth binds the authentication endpoints to t.
func NewAuth(t *transport.Client) *Auth {
	return &Auth{t: t}
}

// Login exchanges credentials for a signed token. The gateway expects the
// OAuth2 password form: the email travels in the "username" field.
func (a *Auth) Login(ctx context.Context, email, password string) (Token, error) {
	form := url.Values{
		"username": {email},
		"password": {password},
	}

	var token Token
	if err := a.t.DoForm(ctx, http.MethodPost, "/login/", form, &token); err != nil {
		return Token{}, err
	}
	return token, nil
}

// Register creates a new user account.
func (a *Auth) Register(ctx context.Context, req RegisterRequest) (Profile, error) {
	var profile Profile
	if err := a.t.DoJSON(ctx, http.MethodPost, "/user/users/", req, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Profile fetches the authenticated user's account record.
func (a *Auth) Profile(ctx context.Context) (Profile, error) {
	var profile Profile
	if err := a.t.DoJSON(ctx, http.MethodGet, "/user/users/profile/me", nil, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}
