// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the tables and the fn_upvote function for a
// self-hosted backend. Safe to call multiple times - uses IF NOT EXISTS
// and OR REPLACE. Hosted deployments manage this server-side.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Venues
CREATE TABLE IF NOT EXISTS venues (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    veg_type TEXT,
    price_bin INTEGER,
    reco_count INTEGER NOT NULL DEFAULT 0,
    lat DOUBLE PRECISION NOT NULL,
    lng DOUBLE PRECISION NOT NULL,
    status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'published', 'retired'))
);

CREATE INDEX IF NOT EXISTS idx_venues_status ON venues(status);
CREATE INDEX IF NOT EXISTS idx_venues_reco_count ON venues(reco_count DESC);

-- One row per (user, venue) pair; the unique key is the deduplication
CREATE TABLE IF NOT EXISTS upvotes (
    user_hash TEXT NOT NULL,
    venue_id TEXT NOT NULL REFERENCES venues(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_hash, venue_id)
);

-- Telemetry
CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    user_hash TEXT NOT NULL,
    venue_id TEXT,
    event TEXT NOT NULL CHECK (event IN ('view', 'swipe', 'upvote', 'nav')),
    meta JSONB,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_events_user_hash ON events(user_hash);
CREATE INDEX IF NOT EXISTS idx_events_venue_id ON events(venue_id);

CREATE OR REPLACE FUNCTION fn_upvote(p_user_hash TEXT, p_venue_id TEXT)
RETURNS INTEGER AS $$
DECLARE
    new_count INTEGER;
BEGIN
    INSERT INTO upvotes (user_hash, venue_id)
    VALUES (p_user_hash, p_venue_id)
    ON CONFLICT (user_hash, venue_id) DO NOTHING;

    UPDATE venues
    SET reco_count = (SELECT COUNT(*) FROM upvotes WHERE venue_id = p_venue_id)
    WHERE id = p_venue_id
    RETURNING reco_count INTO new_count;

    IF new_count IS NULL THEN
        RAISE EXCEPTION 'unknown venue %', p_venue_id;
    END IF;

    RETURN new_count;
END;
$$ LANGUAGE plpgsql;
`
