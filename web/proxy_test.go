// ABOUTME: Tests for the dev reverse proxy
// ABOUTME: Covers forwarding, auth header passthrough, and the down-backend error
package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProxyForwardsAPIRequests(t *testing.T) {
	var gotPath, gotAuth, gotCookie string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer backend.Close()

	proxy, err := NewProxy(backend.URL)
	if err != nil {
		t.Fatalf("NewProxy failed: %v", err)
	}
	front := httptest.NewServer(proxy)
	defer front.Close()

	req, _ := http.NewRequest(http.MethodGet, front.URL+"/api/team/members", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	req.Header.Set("Cookie", "session=abc")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if gotPath != "/api/team/members" {
		t.Errorf("expected forwarded path, got %q", gotPath)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("auth header must pass through, got %q", gotAuth)
	}
	if gotCookie != "session=abc" {
		t.Errorf("cookies must pass through, got %q", gotCookie)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"ok": true}` {
		t.Errorf("unexpected body %q", body)
	}
}

func TestProxyStructuredErrorWhenBackendDown(t *testing.T) {
	// A closed server guarantees a refused connection.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	origin := backend.URL
	backend.Close()

	proxy, err := NewProxy(origin)
	if err != nil {
		t.Fatal(err)
	}
	front := httptest.NewServer(proxy)
	defer front.Close()

	resp, err := http.Get(front.URL + "/api/anything")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON error, got %q", ct)
	}

	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("error body must be JSON: %v", err)
	}
	if payload["detail"] != "backend unavailable" {
		t.Errorf("unexpected detail %q", payload["detail"])
	}
}

func TestProxyRejectsNonAPIPaths(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("non-API path must not reach the backend")
	}))
	defer backend.Close()

	proxy, err := NewProxy(backend.URL)
	if err != nil {
		t.Fatal(err)
	}
	front := httptest.NewServer(proxy)
	defer front.Close()

	resp, err := http.Get(front.URL + "/admin")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestNewProxyRejectsBadOrigin(t *testing.T) {
	for _, origin := range []string{"", "not a url", "localhost:9000"} {
		if _, err := NewProxy(origin); err == nil {
			t.Errorf("NewProxy(%q) expected error", origin)
		}
	}
}
