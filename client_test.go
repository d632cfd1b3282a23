package bullsbears

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MuhammadOusman/BullsAndBears/session"
)

func writeEnvelope(w http.ResponseWriter, status int, errFlag bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"err":     errFlag,
		"message": message,
		"data":    data,
	})
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.API.BaseURL = srv.URL

	client, err := New().WithConfig(cfg).Build(context.Background())
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

func TestRequestAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		writeEnvelope(w, http.StatusOK, false, "ok", nil)
	}))

	ctx := context.Background()
	if err := client.Sessions().SetSession(ctx, session.Session{Token: "tok-1", Role: "user"}); err != nil {
		t.Fatalf("set session: %v", err)
	}

	if _, err := client.get(ctx, "test.op", "/api/test"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func TestRequestOmitsBearerWhenSignedOut(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, false, "ok", nil)
	}))

	if _, err := client.get(context.Background(), "test.op", "/api/test"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header, got %q", gotAuth)
	}
}

func TestErrorClassificationFromBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, true, "invalid credentials", nil)
	}))

	_, err := client.get(context.Background(), "test.op", "/api/test")
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", apiErr.Status)
	}
	if apiErr.Message != "invalid credentials" {
		t.Fatalf("expected body message, got %q", apiErr.Message)
	}
	if apiErr.Body == nil || !apiErr.Body.Err {
		t.Fatalf("expected parsed envelope body, got %+v", apiErr.Body)
	}
	if apiErr.IsConnectivity() {
		t.Fatal("classified error must not be connectivity")
	}
}

func TestErrorClassificationFallbackMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))

	_, err := client.get(context.Background(), "test.op", "/api/test")
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", apiErr.Status)
	}
	if apiErr.Message != "HTTP 502: Bad Gateway" {
		t.Fatalf("expected fallback message, got %q", apiErr.Message)
	}
	if apiErr.Body != nil {
		t.Fatalf("expected nil body for undecodable response, got %+v", apiErr.Body)
	}
}

func TestConnectivityErrorHasStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	cfg := DefaultConfig()
	cfg.API.BaseURL = srv.URL
	client, err := New().WithConfig(cfg).Build(context.Background())
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	defer client.Close()

	_, err = client.get(context.Background(), "test.op", "/api/test")
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !apiErr.IsConnectivity() {
		t.Fatalf("expected connectivity classification, got status %d", apiErr.Status)
	}
}

func TestEnvelopeErrFlagPassedThroughOnSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "No records found", nil)
	}))

	envelope, err := client.get(context.Background(), "test.op", "/api/test")
	if err != nil {
		t.Fatalf("2xx with err flag must not fail: %v", err)
	}
	if !envelope.Err {
		t.Fatal("expected err flag preserved")
	}
	if envelope.Message != "No records found" {
		t.Fatalf("expected message preserved, got %q", envelope.Message)
	}
}

func TestMalformedSuccessBodyIsConnectivity(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))

	_, err := client.get(context.Background(), "test.op", "/api/test")
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !apiErr.IsConnectivity() {
		t.Fatalf("expected connectivity classification, got status %d", apiErr.Status)
	}
}

func TestBuilderRejectsSecondBuild(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.API.BaseURL = srv.URL

	b := New().WithConfig(cfg)
	if _, err := b.Build(context.Background()); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if _, err := b.Build(context.Background()); err == nil {
		t.Fatal("expected second build to fail")
	}
}

type recordingNavigator struct {
	location string
}

func (n *recordingNavigator) Location() string { return n.location }

func (n *recordingNavigator) Navigate(path string) { n.location = path }

func TestUnauthorizedResponseDrivesCallerLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, true, "token expired", nil)
	}))
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.API.BaseURL = srv.URL
	nav := &recordingNavigator{location: "/admin"}

	ctx := context.Background()
	client, err := New().WithConfig(cfg).WithNavigator(nav).Build(ctx)
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	defer client.Close()

	if err := client.Sessions().SetSession(ctx, session.Session{Token: "stale", Role: "admin"}); err != nil {
		t.Fatalf("set session: %v", err)
	}

	// The client passes the 401 through; the call site decides to log out.
	_, err = client.Users(ctx)
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected classified 401, got %v", err)
	}

	if err := client.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if client.Sessions().Authenticated() {
		t.Fatal("expected session cleared")
	}
	if nav.location != "/login" {
		t.Fatalf("expected redirect to /login, got %q", nav.location)
	}
}

func TestBuildRehydratesRoleFromToken(t *testing.T) {
	// Unsigned token with claims {"id":"user-1","role":"admin"}.
	const token = "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJpZCI6InVzZXItMSIsInJvbGUiOiJhZG1pbiJ9."

	store := session.NewMemoryStore()
	ctx := context.Background()
	if err := store.Save(ctx, session.Session{Token: token}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://localhost:0"
	client, err := New().WithConfig(cfg).WithSessionStore(store).Build(ctx)
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	defer client.Close()

	if got := client.Sessions().Role(); got != "admin" {
		t.Fatalf("expected role recovered from token, got %q", got)
	}
}
