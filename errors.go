package parkingclient

import (
	"errors"

	"github.com/amitkrsingh19/parking-client/transport"
)

// ErrInvalidCredential is an exported constant or variable used by the session controller.
//
// Login returns it when the supplied credential is empty; no session state is
// touched in that case.
var ErrInvalidCredential = errors.New("invalid credential")

// ErrClientNotReady is an exported constant or variable used by the session controller.
//
// Session-mutating operations return it when called before Initialize.
var ErrClientNotReady = errors.New("client not initialized")

// ErrAuthenticationExpired is an exported constant or variable used by the session controller.
//
// Requests rejected with 401 surface it after the forced logout has already
// completed. It aliases [transport.ErrAuthenticationExpired] so errors.Is
// works across both packages.
var ErrAuthenticationExpired = transport.ErrAuthenticationExpired
