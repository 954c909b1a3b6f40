package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPPlatformInit(t *testing.T) {
	p := NewHTTPPlatform(PlatformConfig{BaseURL: "https://platform.example"})
	if err := p.Init(context.Background()); err == nil {
		t.Error("Expected init to fail without a channel id")
	}

	p = NewHTTPPlatform(PlatformConfig{BaseURL: "https://platform.example", ChannelID: "1234"})
	if err := p.Init(context.Background()); err != nil {
		t.Errorf("Init failed: %v", err)
	}
}

func TestHTTPPlatformIsLoggedIn(t *testing.T) {
	p := NewHTTPPlatform(PlatformConfig{ChannelID: "1234", IDToken: "tok"})
	if p.IsLoggedIn() {
		t.Error("Must not report logged in before Init")
	}
	if err := p.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !p.IsLoggedIn() {
		t.Error("Expected logged in with an id token")
	}

	anon := NewHTTPPlatform(PlatformConfig{ChannelID: "1234"})
	_ = anon.Init(context.Background())
	if anon.IsLoggedIn() {
		t.Error("Expected not logged in without credentials")
	}
}

func TestHTTPPlatformLoginURL(t *testing.T) {
	p := NewHTTPPlatform(PlatformConfig{BaseURL: "https://platform.example", ChannelID: "1234"})
	if err := p.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	u, err := p.Login("https://app.example/cb")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	for _, want := range []string{"client_id=1234", "response_type=code", "redirect_uri=https%3A%2F%2Fapp.example%2Fcb"} {
		if !strings.Contains(u, want) {
			t.Errorf("Expected %q in login URL %q", want, u)
		}
	}
}

func TestHTTPPlatformIDTokenVerified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth2/v2.1/verify" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("Bad form: %v", err)
		}
		if r.PostForm.Get("id_token") != "good-token" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid id_token"}`))
			return
		}
		w.Write([]byte(`{"sub":"U123"}`))
	}))
	defer srv.Close()

	p := NewHTTPPlatform(PlatformConfig{BaseURL: srv.URL, ChannelID: "1234", IDToken: "good-token"})
	if err := p.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	token, err := p.IDToken(context.Background())
	if err != nil {
		t.Fatalf("IDToken failed: %v", err)
	}
	if token != "good-token" {
		t.Errorf("Expected the verified token back, got %q", token)
	}

	stale := NewHTTPPlatform(PlatformConfig{BaseURL: srv.URL, ChannelID: "1234", IDToken: "stale-token"})
	_ = stale.Init(context.Background())
	if _, err := stale.IDToken(context.Background()); err == nil {
		t.Error("Expected a rejected token to error so the chain falls through")
	}
}

func TestHTTPPlatformProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/profile" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer acc-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"userId":"U456","displayName":"ignored"}`))
	}))
	defer srv.Close()

	p := NewHTTPPlatform(PlatformConfig{BaseURL: srv.URL, ChannelID: "1234", AccessToken: "acc-token"})
	if err := p.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	prof, err := p.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if prof.UserID != "U456" {
		t.Errorf("Expected U456, got %q", prof.UserID)
	}

	anon := NewHTTPPlatform(PlatformConfig{BaseURL: srv.URL, ChannelID: "1234"})
	_ = anon.Init(context.Background())
	if _, err := anon.Profile(context.Background()); err == nil {
		t.Error("Expected error without an access token")
	}
}
