package claims

import (
	"encoding/base64"
	"errors"
	"testing"
)

func payloadToken(t *testing.T, payload string) string {
	t.Helper()
	return "a." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".c"
}

func TestDecodeTotality(t *testing.T) {
	cases := []string{
		"",
		"a.b",
		"a.b.c.d",
		"a.!!!.c",
		"..",
		"a..c",
		payloadToken(t, "not json"),
		payloadToken(t, "[1,2]"),
		payloadToken(t, "42"),
		payloadToken(t, `"string"`),
	}

	for _, token := range cases {
		if _, err := Decode(token); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Decode(%q): expected ErrMalformed, got %v", token, err)
		}
	}
}

func TestDecodeValidPayload(t *testing.T) {
	token := payloadToken(t, `{"sub":"x","role":"admin"}`)

	c, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	sub, ok := c.Subject()
	if !ok || sub != "x" {
		t.Fatalf("Subject() = %q, %v; want \"x\", true", sub, ok)
	}
	role, ok := c.Role()
	if !ok || role != "admin" {
		t.Fatalf("Role() = %q, %v; want \"admin\", true", role, ok)
	}
}

func TestDecodePaddedSegment(t *testing.T) {
	token := "a." + base64.URLEncoding.EncodeToString([]byte(`{"sub":"padded"}`)) + ".c"

	c, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode with padded segment failed: %v", err)
	}
	if sub, ok := c.Subject(); !ok || sub != "padded" {
		t.Fatalf("Subject() = %q, %v", sub, ok)
	}
}

func TestDecodeEmptyObject(t *testing.T) {
	// Anonymous token: no identity, no role. Still a successful decode.
	c, err := Decode(payloadToken(t, `{}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if sub, ok := c.Subject(); ok {
		t.Fatalf("Subject() on empty payload = %q, true", sub)
	}
	if role, ok := c.Role(); ok {
		t.Fatalf("Role() on empty payload = %q, true", role)
	}
}

func TestSubjectFallsBackToEmail(t *testing.T) {
	c, err := Decode(payloadToken(t, `{"email":"old@x.com"}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if sub, ok := c.Subject(); !ok || sub != "old@x.com" {
		t.Fatalf("Subject() = %q, %v; want email fallback", sub, ok)
	}

	c, err = Decode(payloadToken(t, `{"sub":"primary","email":"secondary@x.com"}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if sub, _ := c.Subject(); sub != "primary" {
		t.Fatalf("Subject() = %q; sub must win over email", sub)
	}
}

func TestRoleFallsBackToRolesList(t *testing.T) {
	c, err := Decode(payloadToken(t, `{"roles":["superadmin","user"]}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if role, ok := c.Role(); !ok || role != "superadmin" {
		t.Fatalf("Role() = %q, %v; want first roles entry", role, ok)
	}

	c, err = Decode(payloadToken(t, `{"role":"user","roles":["admin"]}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if role, _ := c.Role(); role != "user" {
		t.Fatalf("Role() = %q; single role claim must win", role)
	}
}

func TestRoleIgnoresMalformedRolesList(t *testing.T) {
	for _, payload := range []string{
		`{"roles":[]}`,
		`{"roles":[42]}`,
		`{"roles":"admin"}`,
		`{"role":""}`,
	} {
		c, err := Decode(payloadToken(t, payload))
		if err != nil {
			t.Fatalf("Decode(%s) failed: %v", payload, err)
		}
		if role, ok := c.Role(); ok {
			t.Fatalf("Role() for %s = %q, true; want absent", payload, role)
		}
	}
}

func TestSubjectIgnoresNonStringValues(t *testing.T) {
	c, err := Decode(payloadToken(t, `{"sub":7,"email":true}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if sub, ok := c.Subject(); ok {
		t.Fatalf("Subject() = %q, true; want absent for non-string claims", sub)
	}
}
