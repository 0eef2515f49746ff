package sentry

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestAuthorizeURL(t *testing.T) {
	raw := authorizeURL("client-123", "state-abc")

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("authorizeURL produced unparseable URL: %v", err)
	}
	if !strings.HasPrefix(raw, oauthAuthorizeURL+"?") {
		t.Errorf("unexpected URL prefix: %s", raw)
	}

	query := parsed.Query()
	if query.Get("client_id") != "client-123" {
		t.Errorf("expected client_id, got %q", query.Get("client_id"))
	}
	if query.Get("response_type") != "token" {
		t.Errorf("expected implicit grant, got %q", query.Get("response_type"))
	}
	if query.Get("state") != "state-abc" {
		t.Errorf("expected state nonce, got %q", query.Get("state"))
	}
	if query.Get("redirect_uri") != oauthRedirectURI {
		t.Errorf("expected redirect URI %q, got %q", oauthRedirectURI, query.Get("redirect_uri"))
	}
}

func TestCallbackMuxServesForwardingPage(t *testing.T) {
	tokens := make(chan string, 1)
	server := httptest.NewServer(callbackMux("state-abc", tokens))
	defer server.Close()

	resp, err := http.Get(server.URL + "/callback")
	if err != nil {
		t.Fatalf("GET /callback failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestCallbackMuxDeliversToken(t *testing.T) {
	tokens := make(chan string, 1)
	server := httptest.NewServer(callbackMux("state-abc", tokens))
	defer server.Close()

	resp, err := http.Get(server.URL + "/token?access_token=tok-123&state=state-abc")
	if err != nil {
		t.Fatalf("GET /token failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	select {
	case token := <-tokens:
		if token != "tok-123" {
			t.Errorf("expected token tok-123, got %q", token)
		}
	default:
		t.Fatal("no token delivered")
	}
}

func TestCallbackMuxRejectsBadState(t *testing.T) {
	tokens := make(chan string, 1)
	server := httptest.NewServer(callbackMux("state-abc", tokens))
	defer server.Close()

	resp, err := http.Get(server.URL + "/token?access_token=tok-123&state=forged")
	if err != nil {
		t.Fatalf("GET /token failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for forged state, got %d", resp.StatusCode)
	}

	select {
	case token := <-tokens:
		t.Fatalf("token %q should not have been delivered", token)
	default:
	}
}

func TestCallbackMuxRejectsMissingToken(t *testing.T) {
	tokens := make(chan string, 1)
	server := httptest.NewServer(callbackMux("state-abc", tokens))
	defer server.Close()

	resp, err := http.Get(server.URL + "/token?state=state-abc")
	if err != nil {
		t.Fatalf("GET /token failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing token, got %d", resp.StatusCode)
	}
}
