package parkingclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amitkrsingh19/parking-client/session"
	"github.com/amitkrsingh19/parking-client/store"
)

// newTestClient builds an initialized-ready client over a memory store. When
// handler is nil no server is started and any network call would fail.
func newTestClient(t *testing.T, handler http.Handler) (*Client, store.Store) {
	t.Helper()

	baseURL := "http://localhost:8000"
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		baseURL = srv.URL
	}

	cfg := DefaultConfig()
	cfg.API.BaseURL = baseURL

	mem := store.NewMemory()
	c, err := New().
		WithConfig(cfg).
		WithStore(mem).
		WithMetricsEnabled(true).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(c.Close)
	return c, mem
}

func makeCredential(t *testing.T, claimSet map[string]interface{}) string {
	t.Helper()

	payload, err := json.Marshal(claimSet)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	enc := base64.RawURLEncoding
	header := enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	return header + "." + enc.EncodeToString(payload) + ".sig"
}

func seedStore(t *testing.T, s store.Store, credential, identity, role string) {
	t.Helper()
	ctx := context.Background()
	if err := s.Write(ctx, store.SlotCredential, credential); err != nil {
		t.Fatalf("seed credential: %v", err)
	}
	if err := s.Write(ctx, store.SlotIdentity, identity); err != nil {
		t.Fatalf("seed identity: %v", err)
	}
	if err := s.Write(ctx, store.SlotRole, role); err != nil {
		t.Fatalf("seed role: %v", err)
	}
}

func readSlot(t *testing.T, s store.Store, slot store.Slot) string {
	t.Helper()
	v, err := s.Read(context.Background(), slot)
	if err != nil {
		t.Fatalf("read %s: %v", slot, err)
	}
	return v
}

func TestInitializeRestoresPersistedSession(t *testing.T) {
	c, mem := newTestClient(t, nil)
	seedStore(t, mem, "persisted-token", "a@x.com", "admin")

	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	got := c.Session()
	want := session.Session{Credential: "persisted-token", Identity: "a@x.com", Role: "admin"}
	if got != want {
		t.Fatalf("session = %+v, want %+v", got, want)
	}
	if !c.IsAdmin() {
		t.Fatal("restored admin session must report IsAdmin")
	}
	if c.MetricsSnapshot().Counters[MetricSessionRestored] != 1 {
		t.Fatal("session restore not counted")
	}
}

func TestInitializeWithEmptyStoreIsAnonymous(t *testing.T) {
	c, _ := newTestClient(t, nil)

	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if c.Session().Authenticated() {
		t.Fatalf("session = %+v, want anonymous", c.Session())
	}
}

func TestOperationsBeforeInitialize(t *testing.T) {
	c, _ := newTestClient(t, nil)
	ctx := context.Background()

	if err := c.AdoptCredential(ctx, "a.b.c"); !errors.Is(err, ErrClientNotReady) {
		t.Fatalf("AdoptCredential = %v, want ErrClientNotReady", err)
	}
	if err := c.Logout(ctx); !errors.Is(err, ErrClientNotReady) {
		t.Fatalf("Logout = %v, want ErrClientNotReady", err)
	}
	if err := c.Login(ctx, "a@x.com", "pw"); !errors.Is(err, ErrClientNotReady) {
		t.Fatalf("Login = %v, want ErrClientNotReady", err)
	}
}

func TestAdoptCredentialDerivesIdentityAndRole(t *testing.T) {
	c, mem := newTestClient(t, nil)
	ctx := context.Background()
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	token := makeCredential(t, map[string]interface{}{"sub": "a@x.com", "role": "admin"})
	if err := c.AdoptCredential(ctx, token); err != nil {
		t.Fatalf("AdoptCredential failed: %v", err)
	}

	got := c.Session()
	if got.Credential != token || got.Identity != "a@x.com" || got.Role != "admin" {
		t.Fatalf("session = %+v", got)
	}
	if readSlot(t, mem, store.SlotCredential) != token {
		t.Fatal("credential not persisted")
	}
	if readSlot(t, mem, store.SlotIdentity) != "a@x.com" {
		t.Fatal("identity not persisted")
	}
	if readSlot(t, mem, store.SlotRole) != "admin" {
		t.Fatal("role not persisted")
	}
	if c.MetricsSnapshot().Counters[MetricLoginSuccess] != 1 {
		t.Fatal("login success not counted")
	}
}

func TestAdoptCredentialKeepsPreviousOnUndecodable(t *testing.T) {
	c, mem := newTestClient(t, nil)
	ctx := context.Background()
	seedStore(t, mem, "old-token", "a@x.com", "user")
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if err := c.AdoptCredential(ctx, "x.!!!.z"); err != nil {
		t.Fatalf("undecodable credential must still be adopted: %v", err)
	}

	got := c.Session()
	want := session.Session{Credential: "x.!!!.z", Identity: "a@x.com", Role: "user"}
	if got != want {
		t.Fatalf("session = %+v, want %+v", got, want)
	}
	if readSlot(t, mem, store.SlotCredential) != "x.!!!.z" {
		t.Fatal("credential not persisted")
	}
	if c.MetricsSnapshot().Counters[MetricClaimsDecodeFailure] != 1 {
		t.Fatal("decode failure not counted")
	}
}

func TestAdoptCredentialPartialClaimsMerge(t *testing.T) {
	c, mem := newTestClient(t, nil)
	ctx := context.Background()
	seedStore(t, mem, "old-token", "a@x.com", "admin")
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// Subject present, role absent: role survives from the previous session.
	token := makeCredential(t, map[string]interface{}{"sub": "b@x.com"})
	if err := c.AdoptCredential(ctx, token); err != nil {
		t.Fatalf("AdoptCredential failed: %v", err)
	}

	got := c.Session()
	if got.Identity != "b@x.com" || got.Role != "admin" {
		t.Fatalf("session = %+v", got)
	}
	if readSlot(t, mem, store.SlotRole) != "admin" {
		t.Fatal("previous role must remain persisted")
	}
}

func TestAdoptEmptyCredentialRejected(t *testing.T) {
	c, mem := newTestClient(t, nil)
	ctx := context.Background()
	seedStore(t, mem, "old-token", "a@x.com", "user")
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if err := c.AdoptCredential(ctx, ""); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}

	if got := c.Session(); got.Credential != "old-token" {
		t.Fatalf("session mutated by rejected login: %+v", got)
	}
	if readSlot(t, mem, store.SlotCredential) != "old-token" {
		t.Fatal("store mutated by rejected login")
	}
}

func TestLoginRoundTrip(t *testing.T) {
	token := ""
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login/" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": token,
			"token_type":   "bearer",
		})
	})

	c, _ := newTestClient(t, handler)
	ctx := context.Background()
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	token = makeCredential(t, map[string]interface{}{"sub": "a@x.com", "role": "user"})
	if err := c.Login(ctx, "a@x.com", "secret"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	got := c.Session()
	if !got.Authenticated() || got.Identity != "a@x.com" || got.Role != "user" {
		t.Fatalf("session = %+v", got)
	}
}

func TestLogoutClearsEverythingAndIsIdempotent(t *testing.T) {
	c, mem := newTestClient(t, nil)
	ctx := context.Background()
	seedStore(t, mem, "token", "a@x.com", "admin")
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := c.Logout(ctx); err != nil {
			t.Fatalf("Logout #%d failed: %v", i+1, err)
		}
	}

	if got := c.Session(); got != (session.Session{}) {
		t.Fatalf("session = %+v, want zero", got)
	}
	for _, slot := range store.Slots() {
		if v := readSlot(t, mem, slot); v != "" {
			t.Fatalf("slot %s = %q after logout", slot, v)
		}
	}
}

func TestUnauthorizedResponseForcesLogout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	})

	c, mem := newTestClient(t, handler)
	ctx := context.Background()
	seedStore(t, mem, "expired-token", "a@x.com", "user")
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	_, err := c.Bookings().ForUser(ctx)
	if !errors.Is(err, ErrAuthenticationExpired) {
		t.Fatalf("expected ErrAuthenticationExpired, got %v", err)
	}

	if c.Session().Authenticated() {
		t.Fatalf("session still authenticated after 401: %+v", c.Session())
	}
	if v := readSlot(t, mem, store.SlotCredential); v != "" {
		t.Fatalf("credential still persisted after 401: %q", v)
	}
	if c.MetricsSnapshot().Counters[MetricForcedLogout] != 1 {
		t.Fatal("forced logout not counted exactly once")
	}
}

func TestSubscriberObservesPersistedState(t *testing.T) {
	c, mem := newTestClient(t, nil)
	ctx := context.Background()
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	var notified []session.Session
	cancel := c.Subscribe(func(s session.Session) {
		// The store must never lag the notified value.
		if got := readSlot(t, mem, store.SlotCredential); got != s.Credential {
			t.Errorf("store credential = %q during notification of %q", got, s.Credential)
		}
		notified = append(notified, s)
	})
	defer cancel()

	token := makeCredential(t, map[string]interface{}{"sub": "a@x.com", "role": "user"})
	if err := c.AdoptCredential(ctx, token); err != nil {
		t.Fatalf("AdoptCredential failed: %v", err)
	}
	if err := c.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if len(notified) != 2 {
		t.Fatalf("notified %d times, want 2", len(notified))
	}
	if notified[0].Credential != token {
		t.Fatalf("first notification = %+v", notified[0])
	}
	if notified[1] != (session.Session{}) {
		t.Fatalf("second notification = %+v, want zero", notified[1])
	}
}

func TestSubscribeCancelStopsNotifications(t *testing.T) {
	c, _ := newTestClient(t, nil)
	ctx := context.Background()
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	calls := 0
	cancel := c.Subscribe(func(session.Session) { calls++ })
	cancel()
	cancel()

	if err := c.AdoptCredential(ctx, "a.b.c"); err != nil {
		t.Fatalf("AdoptCredential failed: %v", err)
	}
	if calls != 0 {
		t.Fatalf("cancelled subscriber called %d times", calls)
	}
}

func TestDecideRouteUsesCurrentSession(t *testing.T) {
	c, mem := newTestClient(t, nil)
	ctx := context.Background()
	seedStore(t, mem, "token", "a@x.com", "user")
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if d := c.DecideRoute("/dashboard"); !d.Allowed() {
		t.Fatal("authenticated user denied /dashboard")
	}
	if target, ok := c.DecideRoute("/admin/dashboard").RedirectTo(); !ok || target != "/dashboard" {
		t.Fatalf("non-admin on /admin/dashboard: redirect = %q, %v", target, ok)
	}

	if err := c.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if target, ok := c.DecideRoute("/dashboard").RedirectTo(); !ok || target != "/login" {
		t.Fatalf("anonymous on /dashboard: redirect = %q, %v", target, ok)
	}
}

func TestBuilderRequiresStore(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("expected error when no store is configured")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New().WithStore(store.NewMemory())
	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error on second Build")
	}
}
