// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared across the client.

# Domain Types

  - Venue: backend venue row (id, name, veg_type, price_bin, reco_count, lat, lng)
  - LatLng: a finite coordinate pair; nil pointer means "no origin"
  - Event: one telemetry row (user_hash, venue_id, event tag, meta)
  - RankedVenue: Venue plus distance/ETA annotations for display

# Constants

Event tags:

	EventView   = "view"
	EventSwipe  = "swipe"
	EventUpvote = "upvote"
	EventNav    = "nav"

Travel modes:

	ModeWalk  = "walk"
	ModeCycle = "cycle"

Time budgets (minutes):

	Budget10  = 10
	Budget15  = 15
	BudgetAll = 999  // the "15+" sentinel, no cutoff
*/
package models
