// ABOUTME: Tests for the HTTP client core
// ABOUTME: Covers bearer attachment, error detail decoding, and 401 hints
package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func staticToken(tok string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok})
}

func TestBearerAttachedPerRequest(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok-123"))
	if err := client.get(context.Background(), "/team/members", nil); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", got)
	}
}

func TestErrorDetailDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": "stream is not in review"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.post(context.Background(), "/x", nil, nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("expected 409, got %d", apiErr.Status)
	}
	if apiErr.Detail != "stream is not in review" {
		t.Errorf("expected server detail, got %q", apiErr.Detail)
	}
}

func TestErrorFallsBackToRawBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.get(context.Background(), "/x", nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Detail != "upstream exploded" {
		t.Errorf("expected raw body as detail, got %q", apiErr.Detail)
	}
}

func TestUnauthorizedGetsReauthHint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "token expired"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("stale"))
	err := client.get(context.Background(), "/x", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "studioctl login") {
		t.Errorf("401 must hint at re-authentication, got %q", err.Error())
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Errorf("expected wrapped *Error with 401, got %v", err)
	}
}

func TestTokenSourceFailureShortCircuits(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	failing := tokenSourceFunc(func() (*oauth2.Token, error) {
		return nil, errors.New("identity provider down")
	})
	client := NewClient(server.URL, failing)
	if err := client.get(context.Background(), "/x", nil); err == nil {
		t.Fatal("expected token error")
	}
	if hits != 0 {
		t.Errorf("request must not be sent without a token, got %d hits", hits)
	}
}

type tokenSourceFunc func() (*oauth2.Token, error)

func (f tokenSourceFunc) Token() (*oauth2.Token, error) { return f() }
