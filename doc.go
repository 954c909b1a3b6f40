// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the vegnear client.

vegnear browses nearby vegetarian-friendly venues, filters them by a
walking (or cycling) time budget, and casts "+1" recommendation votes
against a managed backend.

# Starting the Client

The client requires environment variables or CLI flags for configuration:

	BACKEND_URL=https://... BACKEND_KEY=... FINGERPRINT_SALT=... go run .

Or against a self-hosted database:

	go run . -driver postgres -d "postgres://..."

# Configuration

Required settings:

  - BACKEND_URL (-b) and BACKEND_KEY (-k) for the rest driver, or
    DATABASE_URL (-d) for the postgres driver
  - FINGERPRINT_SALT (-fingerprint-salt): secret for the identity
    fallback hash

Optional settings:

  - STORE_PATH (-s): local store path (default: vegnear.db)
  - VENUE_LIMIT (-n): fetch cap, 1-100 (default: 100)
  - TRAVEL_MODE (-m): walk or cycle (default: walk)
  - PLATFORM_* variables for the messaging-platform login session

# Architecture

The client is assembled from small packages with dependency injection:

  - backend: venue reads, the fn_upvote RPC, telemetry inserts
    (PostgREST or lib/pq driver)
  - identity: actor-key resolution with silent fallback chain
  - origin: reference-point selection (gps, landmarks, custom slots)
  - geo: haversine distance and constant-speed ETA
  - session: page state - venue cache, filter/sort, voting
  - telemetry: fire-and-forget event emitter
  - localstore: SQLite key/value persistence
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
