// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vegnear/vegnear/models"
)

// RESTClient speaks the PostgREST wire protocol of the hosted backend:
// column selection and filters in the query string, remote procedures
// under /rest/v1/rpc, the API key in both the apikey and Authorization
// headers.
type RESTClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRESTClient creates a client for the hosted backend at baseURL.
func NewRESTClient(baseURL, apiKey string) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ListVenues implements Store.
func (c *RESTClient) ListVenues(ctx context.Context, limit int) ([]models.Venue, error) {
	q := url.Values{}
	q.Set("select", venueColumns)
	q.Set("status", "eq."+models.StatusPublished)
	q.Set("order", "reco_count.desc")
	q.Set("limit", strconv.Itoa(clampLimit(limit)))

	var venues []models.Venue
	if err := c.do(ctx, http.MethodGet, "/rest/v1/venues?"+q.Encode(), nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

// Upvote implements Store. PostgREST returns the function's scalar
// result as a bare JSON number.
func (c *RESTClient) Upvote(ctx context.Context, userHash, venueID string) (int, error) {
	body := map[string]string{
		"p_user_hash": userHash,
		"p_venue_id":  venueID,
	}
	var count int
	if err := c.do(ctx, http.MethodPost, "/rest/v1/rpc/fn_upvote", body, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// InsertEvent implements Store.
func (c *RESTClient) InsertEvent(ctx context.Context, ev models.Event) error {
	return c.do(ctx, http.MethodPost, "/rest/v1/events", ev, nil)
}

func (c *RESTClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if out == nil {
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The raw backend message is surfaced to the user as-is.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
