// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"context"

	"github.com/vegnear/vegnear/models"
)

// DefaultVenueLimit caps a venue read. The backend table holds at most
// a few hundred rows; the client never pages.
const DefaultVenueLimit = 100

// venueColumns is the projection shared by both drivers.
const venueColumns = "id,name,veg_type,price_bin,reco_count,lat,lng"

// Store is the client contract against the managed venue backend.
// Two drivers exist: a PostgREST client (hosted deployments) and a
// direct lib/pq connection (self-hosted).
type Store interface {
	// ListVenues returns published venues ordered by vote count
	// descending, capped at limit rows (DefaultVenueLimit when
	// limit is zero or out of range).
	ListVenues(ctx context.Context, limit int) ([]models.Venue, error)

	// Upvote invokes fn_upvote with the actor key and venue id and
	// returns the new recommendation count. Deduplication happens
	// server-side; the client never increments locally.
	Upvote(ctx context.Context, userHash, venueID string) (int, error)

	// InsertEvent writes one telemetry row.
	InsertEvent(ctx context.Context, ev models.Event) error
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > DefaultVenueLimit {
		return DefaultVenueLimit
	}
	return limit
}
