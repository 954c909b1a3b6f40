// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/vegnear/vegnear/models"
)

// PostgresStore implements Store over a direct database/sql connection
// for self-hosted deployments. The caller owns the *sql.DB and is
// responsible for registering the lib/pq driver.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ListVenues implements Store.
func (s *PostgresStore) ListVenues(ctx context.Context, limit int) ([]models.Venue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, veg_type, price_bin, reco_count, lat, lng
		FROM venues
		WHERE status = $1
		ORDER BY reco_count DESC
		LIMIT $2
	`, models.StatusPublished, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	venues := []models.Venue{}
	for rows.Next() {
		var v models.Venue
		var vegType sql.NullString
		var priceBin sql.NullInt64

		if err := rows.Scan(&v.ID, &v.Name, &vegType, &priceBin, &v.RecoCount, &v.Lat, &v.Lng); err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		if vegType.Valid {
			v.VegType = &vegType.String
		}
		if priceBin.Valid {
			bin := int(priceBin.Int64)
			v.PriceBin = &bin
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read venues: %w", err)
	}

	return venues, nil
}

// Upvote implements Store.
func (s *PostgresStore) Upvote(ctx context.Context, userHash, venueID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT fn_upvote($1, $2)`, userHash, venueID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("upvote failed: %w", err)
	}
	return count, nil
}

// InsertEvent implements Store.
func (s *PostgresStore) InsertEvent(ctx context.Context, ev models.Event) error {
	var venueID sql.NullString
	if ev.VenueID != nil {
		venueID = sql.NullString{String: *ev.VenueID, Valid: true}
	}

	var meta any
	if ev.Meta != nil {
		buf, err := json.Marshal(ev.Meta)
		if err != nil {
			return fmt.Errorf("failed to encode event meta: %w", err)
		}
		meta = string(buf)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, user_hash, venue_id, event, meta)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), ev.UserHash, venueID, ev.Event, meta)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}
