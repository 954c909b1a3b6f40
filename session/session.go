// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/vegnear/vegnear/backend"
	"github.com/vegnear/vegnear/geo"
	"github.com/vegnear/vegnear/models"
	"github.com/vegnear/vegnear/telemetry"
)

// Session holds the page state: the cached venue list (replaced
// wholesale on reload), the current origin, travel mode, time budget,
// and the card cursor for swiping.
type Session struct {
	store    backend.Store
	events   *telemetry.Emitter
	userHash string

	mu        sync.Mutex
	origin    *models.LatLng
	mode      string
	budgetMin int
	limit     int
	venues    []models.Venue
	cursor    int
}

func New(store backend.Store, events *telemetry.Emitter, userHash string, limit int) *Session {
	if limit <= 0 || limit > backend.DefaultVenueLimit {
		limit = backend.DefaultVenueLimit
	}
	return &Session{
		store:     store,
		events:    events,
		userHash:  userHash,
		mode:      models.ModeWalk,
		budgetMin: models.Budget15,
		limit:     limit,
	}
}

// Load fetches published venues and replaces the cached list wholesale.
func (s *Session) Load(ctx context.Context) error {
	venues, err := s.store.ListVenues(ctx, s.limit)
	if err != nil {
		return fmt.Errorf("failed to load venues: %w", err)
	}

	s.mu.Lock()
	s.venues = venues
	s.cursor = 0
	s.mu.Unlock()

	s.events.Emit(models.EventView, nil, map[string]any{"count": len(venues)})
	slog.Info("venues loaded", "count", len(venues))
	return nil
}

// SetOrigin replaces the reference point. nil means "no origin": the
// list is shown unfiltered.
func (s *Session) SetOrigin(p *models.LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.origin = nil
		return
	}
	pt := *p
	s.origin = &pt
}

// Origin returns a copy of the current reference point, or nil.
func (s *Session) Origin() *models.LatLng {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.origin == nil {
		return nil
	}
	pt := *s.origin
	return &pt
}

// SetBudget selects the time budget in minutes.
func (s *Session) SetBudget(minutes int) error {
	switch minutes {
	case models.Budget10, models.Budget15, models.BudgetAll:
	default:
		return fmt.Errorf("unsupported time budget: %d", minutes)
	}
	s.mu.Lock()
	s.budgetMin = minutes
	s.mu.Unlock()
	return nil
}

// Budget returns the current time budget in minutes.
func (s *Session) Budget() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budgetMin
}

// SetMode selects the travel mode.
func (s *Session) SetMode(mode string) error {
	if mode != models.ModeWalk && mode != models.ModeCycle {
		return fmt.Errorf("unsupported travel mode: %q", mode)
	}
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	return nil
}

// Mode returns the current travel mode.
func (s *Session) Mode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Visible returns the venues within the current time budget, sorted by
// ETA ascending then vote count descending. With no origin the list is
// returned unfiltered in backend order, without annotations.
func (s *Session) Visible() []models.RankedVenue {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.RankedVenue, 0, len(s.venues))

	if s.origin == nil {
		for _, v := range s.venues {
			out = append(out, models.RankedVenue{Venue: v})
		}
		return out
	}

	budgetSec := s.budgetMin * 60
	for _, v := range s.venues {
		d := geo.HaversineKm(*s.origin, models.LatLng{Lat: v.Lat, Lng: v.Lng})
		eta := geo.ETASeconds(d, s.mode)
		if s.budgetMin != models.BudgetAll && eta > budgetSec {
			continue
		}
		out = append(out, models.RankedVenue{Venue: v, DistanceKm: d, ETASeconds: eta})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ETASeconds != out[j].ETASeconds {
			return out[i].ETASeconds < out[j].ETASeconds
		}
		return out[i].RecoCount > out[j].RecoCount
	})

	return out
}

// Upvote casts a "+1" for a venue and patches only that venue's cached
// count with the value the backend returned. No local increment
// arithmetic, so a deduplicated vote can't double-count. Errors are
// returned verbatim for display; state is left unchanged.
func (s *Session) Upvote(ctx context.Context, venueID string) (int, error) {
	count, err := s.store.Upvote(ctx, s.userHash, venueID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	for i := range s.venues {
		if s.venues[i].ID == venueID {
			s.venues[i].RecoCount = count
			break
		}
	}
	s.mu.Unlock()

	s.events.Emit(models.EventUpvote, &venueID, nil)
	slog.Info("venue upvoted", "venue_id", venueID, "reco_count", count)
	return count, nil
}

// Navigate returns the maps deep link for a venue in the current
// travel mode and records a nav event.
func (s *Session) Navigate(venueID string) (string, error) {
	s.mu.Lock()
	var dest *models.LatLng
	for _, v := range s.venues {
		if v.ID == venueID {
			dest = &models.LatLng{Lat: v.Lat, Lng: v.Lng}
			break
		}
	}
	mode := s.mode
	s.mu.Unlock()

	if dest == nil {
		return "", fmt.Errorf("unknown venue %q", venueID)
	}

	s.events.Emit(models.EventNav, &venueID, nil)
	return geo.DirectionsURL(*dest, mode), nil
}

// Swipe moves the card cursor through the visible list, wrapping at
// both ends, and returns the venue now in view (nil when the list is
// empty).
func (s *Session) Swipe(forward bool) *models.RankedVenue {
	visible := s.Visible()

	s.mu.Lock()
	if len(visible) == 0 {
		s.cursor = 0
		s.mu.Unlock()
		return nil
	}
	if forward {
		s.cursor++
	} else {
		s.cursor--
	}
	if s.cursor >= len(visible) {
		s.cursor = 0
	}
	if s.cursor < 0 {
		s.cursor = len(visible) - 1
	}
	v := visible[s.cursor]
	s.mu.Unlock()

	direction := "prev"
	if forward {
		direction = "next"
	}
	s.events.Emit(models.EventSwipe, &v.ID, map[string]any{"dir": direction})
	return &v
}
