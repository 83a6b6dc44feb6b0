package claims

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned for any input that is not a three-segment token
// with a base64url-encoded JSON object payload.
var ErrMalformed = errors.New("malformed credential payload")

const segmentCount = 3

// The backend emits unpadded base64url, but padded segments have been seen
// from older token issuers; accept both.
var segmentDecoder = jwt.NewParser(jwt.WithPaddingAllowed())

// Claims is the decoded credential payload. Fields are optional: a payload
// carrying neither identity nor role is still a valid decode result.
type Claims struct {
	values jwt.MapClaims
}

// Decode extracts the payload segment of token. The signature and header
// segments are ignored; only their presence is required.
func Decode(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != segmentCount {
		return Claims{}, ErrMalformed
	}

	payload, err := segmentDecoder.DecodeSegment(parts[1])
	if err != nil {
		return Claims{}, ErrMalformed
	}

	values := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &values); err != nil {
		return Claims{}, ErrMalformed
	}

	return Claims{values: values}, nil
}

// Subject returns the identity carried by the payload: the "sub" claim,
// falling back to "email". The second result is false when neither is a
// non-empty string.
func (c Claims) Subject() (string, bool) {
	if sub, err := c.values.GetSubject(); err == nil && sub != "" {
		return sub, true
	}
	return c.stringValue("email")
}

// Role returns the authoritative role: the "role" claim, falling back to the
// first entry of "roles". The second result is false when neither yields a
// non-empty string.
func (c Claims) Role() (string, bool) {
	if role, ok := c.stringValue("role"); ok {
		return role, true
	}

	roles, ok := c.values["roles"].([]interface{})
	if !ok || len(roles) == 0 {
		return "", false
	}
	first, ok := roles[0].(string)
	if !ok || first == "" {
		return "", false
	}
	return first, true
}

func (c Claims) stringValue(key string) (string, bool) {
	v, ok := c.values[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
