// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/vegnear/vegnear/localstore"
	"github.com/vegnear/vegnear/models"
)

// OpenTestStore returns an ephemeral in-memory local store.
func OpenTestStore(t *testing.T) *localstore.Store {
	t.Helper()

	store, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// StrPtr returns a pointer to s, for optional string fields.
func StrPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to n, for optional int fields.
func IntPtr(n int) *int {
	return &n
}

// Venues returns a fixture set around downtown Tainan. Distances from
// the campus landmark {22.9976, 120.2191} grow with the index.
func Venues() []models.Venue {
	return []models.Venue{
		{ID: "v1", Name: "慕ㄚ非蔬食", VegType: StrPtr("lacto-ovo"), PriceBin: IntPtr(1), RecoCount: 42, Lat: 22.9949, Lng: 120.2199},
		{ID: "v2", Name: "赤崁素食", VegType: StrPtr("vegan"), PriceBin: IntPtr(2), RecoCount: 87, Lat: 22.9975, Lng: 120.2026},
		{ID: "v3", Name: "綠圈圈早午餐", RecoCount: 12, Lat: 23.0012, Lng: 120.2385},
		{ID: "v4", Name: "安平豆花(素)", VegType: StrPtr("lacto-ovo"), RecoCount: 42, Lat: 23.0003, Lng: 120.1601},
	}
}

// FakeBackend is an in-memory backend.Store for session and telemetry
// tests. Zero value is usable; set the Fail* fields to force errors.
type FakeBackend struct {
	mu sync.Mutex

	VenueRows  []models.Venue
	Counts     map[string]int
	Events     []models.Event
	UpvoteFrom []string // user hashes seen by Upvote, in call order
	Limits     []int    // limits seen by ListVenues, in call order

	FailList   error
	FailUpvote error
	FailEvents error

	voted map[string]bool // userHash|venueID pairs already counted
}

// ListVenues implements backend.Store.
func (f *FakeBackend) ListVenues(ctx context.Context, limit int) ([]models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Limits = append(f.Limits, limit)
	if f.FailList != nil {
		return nil, f.FailList
	}
	if limit <= 0 || limit > len(f.VenueRows) {
		limit = len(f.VenueRows)
	}
	out := make([]models.Venue, limit)
	copy(out, f.VenueRows[:limit])
	return out, nil
}

// Upvote implements backend.Store. The new count is current+1 on first
// vote per user, unchanged on repeats, mimicking fn_upvote.
func (f *FakeBackend) Upvote(ctx context.Context, userHash, venueID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailUpvote != nil {
		return 0, f.FailUpvote
	}
	if f.Counts == nil {
		f.Counts = make(map[string]int)
	}
	found := false
	for _, v := range f.VenueRows {
		if v.ID == venueID {
			if _, ok := f.Counts[venueID]; !ok {
				f.Counts[venueID] = v.RecoCount
			}
			found = true
			break
		}
	}
	if !found {
		return 0, errors.New("unknown venue " + venueID)
	}

	if f.voted == nil {
		f.voted = make(map[string]bool)
	}
	pair := userHash + "|" + venueID
	f.UpvoteFrom = append(f.UpvoteFrom, userHash)
	if !f.voted[pair] {
		f.voted[pair] = true
		f.Counts[venueID]++
	}
	return f.Counts[venueID], nil
}

// InsertEvent implements backend.Store.
func (f *FakeBackend) InsertEvent(ctx context.Context, ev models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailEvents != nil {
		return f.FailEvents
	}
	f.Events = append(f.Events, ev)
	return nil
}

// EventTags returns the recorded event tags in insertion order.
func (f *FakeBackend) EventTags() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	tags := make([]string, len(f.Events))
	for i, ev := range f.Events {
		tags[i] = ev.Event
	}
	return tags
}
