// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Venue publication status in the backend table
const StatusPublished = "published"

// Telemetry event tags
const (
	EventView   = "view"
	EventSwipe  = "swipe"
	EventUpvote = "upvote"
	EventNav    = "nav"
)

// Travel modes
const (
	ModeWalk  = "walk"
	ModeCycle = "cycle"
)

// Time budgets in minutes. BudgetAll is the "15+" sentinel: every venue
// passes the filter regardless of ETA.
const (
	Budget10  = 10
	Budget15  = 15
	BudgetAll = 999
)

// LatLng is a geographic point. Both fields are always finite; an
// absent origin is represented as a nil *LatLng, never a partial pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Venue is the client's read-only copy of a backend venue row. The
// only local mutation ever applied is replacing RecoCount with the
// value returned by a successful upvote call.
type Venue struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	VegType   *string `json:"veg_type,omitempty"`
	PriceBin  *int    `json:"price_bin,omitempty"`
	RecoCount int     `json:"reco_count"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// Event is one telemetry row. VenueID is nil for events that are not
// tied to a specific venue (e.g. a list view).
type Event struct {
	UserHash string         `json:"user_hash"`
	VenueID  *string        `json:"venue_id,omitempty"`
	Event    string         `json:"event"`
	Meta     map[string]any `json:"meta,omitempty"`
}

// RankedVenue is a venue annotated with distance and ETA relative to
// the current origin. With no origin both annotations are zero.
type RankedVenue struct {
	Venue
	DistanceKm float64 `json:"distance_km"`
	ETASeconds int     `json:"eta_seconds"`
}
