// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Profile is the subset of the platform profile the client consumes.
type Profile struct {
	UserID string `json:"userId"`
}

// Platform is the messaging-platform login SDK surface. Every method
// may fail; callers treat any failure as "identity unavailable, fall
// back" and never surface it to the user.
type Platform interface {
	Init(ctx context.Context) error
	IsLoggedIn() bool
	// Login returns the authorization URL the user must visit to
	// establish a platform session.
	Login(redirectURI string) (string, error)
	IDToken(ctx context.Context) (string, error)
	Profile(ctx context.Context) (Profile, error)
}

// PlatformConfig carries the channel registration and any session
// credentials already held for the user.
type PlatformConfig struct {
	BaseURL     string
	ChannelID   string
	IDToken     string
	AccessToken string
}

// HTTPPlatform implements Platform against the platform's REST
// endpoints. Session credentials are injected at construction; the
// client itself never completes the redirect dance.
type HTTPPlatform struct {
	baseURL     string
	channelID   string
	idToken     string
	accessToken string
	client      *http.Client
	initialized bool
}

func NewHTTPPlatform(cfg PlatformConfig) *HTTPPlatform {
	return &HTTPPlatform{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		channelID:   cfg.ChannelID,
		idToken:     cfg.IDToken,
		accessToken: cfg.AccessToken,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Init implements Platform.
func (p *HTTPPlatform) Init(ctx context.Context) error {
	if p.channelID == "" {
		return errors.New("platform channel id not configured")
	}
	p.initialized = true
	return nil
}

// IsLoggedIn implements Platform. A session exists when either
// credential is present.
func (p *HTTPPlatform) IsLoggedIn() bool {
	return p.initialized && (p.idToken != "" || p.accessToken != "")
}

// Login implements Platform.
func (p *HTTPPlatform) Login(redirectURI string) (string, error) {
	if !p.initialized {
		return "", errors.New("platform not initialized")
	}
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", p.channelID)
	q.Set("redirect_uri", redirectURI)
	q.Set("scope", "profile openid")
	return p.baseURL + "/oauth2/v2.1/authorize?" + q.Encode(), nil
}

// IDToken implements Platform. The token is verified against the
// platform before use so a stale session falls through to the next
// identity source instead of producing a dead actor key.
func (p *HTTPPlatform) IDToken(ctx context.Context) (string, error) {
	if p.idToken == "" {
		return "", errors.New("no id token in session")
	}

	form := url.Values{}
	form.Set("id_token", p.idToken)
	form.Set("client_id", p.channelID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/oauth2/v2.1/verify", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token verification failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("token rejected (%d): %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return p.idToken, nil
}

// Profile implements Platform.
func (p *HTTPPlatform) Profile(ctx context.Context) (Profile, error) {
	if p.accessToken == "" {
		return Profile{}, errors.New("no access token in session")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v2/profile", nil)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("profile fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Profile{}, fmt.Errorf("profile fetch returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var prof Profile
	if err := json.NewDecoder(resp.Body).Decode(&prof); err != nil {
		return Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	return prof, nil
}
