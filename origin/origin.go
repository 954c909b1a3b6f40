// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package origin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vegnear/vegnear/localstore"
	"github.com/vegnear/vegnear/models"
)

// State of the selector.
type State string

const (
	StateUnset     State = "unset"
	StateResolving State = "resolving"
	StateResolved  State = "resolved"
	StateFailed    State = "failed"
)

// Selection choices.
const (
	ChoiceGPS     = "gps"
	ChoiceStation = "station"
	ChoiceCampus  = "campus"
	ChoiceCustom1 = "custom1"
	ChoiceCustom2 = "custom2"
)

// Hard-coded landmark reference points (downtown Tainan).
var landmarks = map[string]models.LatLng{
	ChoiceStation: {Lat: 22.9971, Lng: 120.2125},
	ChoiceCampus:  {Lat: 22.9976, Lng: 120.2191},
}

// geolocationTimeout bounds a device position request. No retry: the
// user re-selects to try again.
const geolocationTimeout = 6 * time.Second

// ErrNoSavedPoint means the custom slot is empty; the caller should
// prompt for coordinates and SaveCustom before re-selecting.
var ErrNoSavedPoint = errors.New("origin: no saved point for this slot")

// Geolocator reports the device position. Implementations must honor
// the context deadline; the selector does not cancel in-flight lookups
// beyond that.
type Geolocator interface {
	Current(ctx context.Context) (models.LatLng, error)
}

// Selector resolves the reference point distance/ETA is computed from:
// device geolocation, a fixed landmark, or a persisted custom slot.
type Selector struct {
	store *localstore.Store
	loc   Geolocator

	mu    sync.Mutex
	state State
	point *models.LatLng
}

// NewSelector creates a selector. loc may be nil when the device has
// no positioning source; ChoiceGPS then degrades to "no origin".
func NewSelector(store *localstore.Store, loc Geolocator) *Selector {
	return &Selector{store: store, loc: loc, state: StateUnset}
}

// Select resolves the given choice. Geolocation failure is not an
// error: it returns (nil, nil) with the selector in StateFailed and
// the venue list shown unfiltered. Store and parse failures are real
// errors.
func (s *Selector) Select(ctx context.Context, choice string) (*models.LatLng, error) {
	if p, ok := landmarks[choice]; ok {
		s.set(StateResolved, &p)
		out := p
		return &out, nil
	}

	switch choice {
	case ChoiceGPS:
		return s.locate(ctx)

	case ChoiceCustom1, ChoiceCustom2:
		value, err := s.store.Get(storeKey(choice))
		if errors.Is(err, localstore.ErrNotFound) {
			return nil, ErrNoSavedPoint
		}
		if err != nil {
			return nil, err
		}
		p, err := ParsePoint(value)
		if err != nil {
			return nil, fmt.Errorf("stored point for %s is corrupt: %w", choice, err)
		}
		s.set(StateResolved, &p)
		out := p
		return &out, nil

	default:
		return nil, fmt.Errorf("origin: unknown choice %q", choice)
	}
}

func (s *Selector) locate(ctx context.Context) (*models.LatLng, error) {
	if s.loc == nil {
		slog.Warn("geolocation unsupported on this device")
		s.set(StateFailed, nil)
		return nil, nil
	}

	s.set(StateResolving, nil)

	ctx, cancel := context.WithTimeout(ctx, geolocationTimeout)
	defer cancel()

	p, err := s.loc.Current(ctx)
	if err != nil {
		slog.Warn("geolocation failed", "error", err)
		s.set(StateFailed, nil)
		return nil, nil
	}
	if !finite(p) {
		slog.Warn("geolocation returned non-finite coordinates")
		s.set(StateFailed, nil)
		return nil, nil
	}

	s.set(StateResolved, &p)
	out := p
	return &out, nil
}

// SaveCustom persists a user-supplied point into a custom slot.
func (s *Selector) SaveCustom(choice string, p models.LatLng) error {
	if choice != ChoiceCustom1 && choice != ChoiceCustom2 {
		return fmt.Errorf("origin: %q is not a custom slot", choice)
	}
	if !finite(p) {
		return errors.New("origin: coordinates must be finite")
	}
	return s.store.Put(storeKey(choice), FormatPoint(p))
}

// State returns the current resolution state.
func (s *Selector) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Point returns a copy of the resolved point, or nil.
func (s *Selector) Point() *models.LatLng {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.point == nil {
		return nil
	}
	out := *s.point
	return &out
}

func (s *Selector) set(state State, p *models.LatLng) {
	s.mu.Lock()
	s.state = state
	s.point = p
	s.mu.Unlock()
}

func storeKey(choice string) string {
	return "origin." + choice
}

// FormatPoint renders a point as "lat,lng" for the local store.
func FormatPoint(p models.LatLng) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// ParsePoint parses "lat,lng". Both parts must be finite numbers.
func ParsePoint(value string) (models.LatLng, error) {
	parts := strings.Split(strings.TrimSpace(value), ",")
	if len(parts) != 2 {
		return models.LatLng{}, fmt.Errorf("expected \"lat,lng\", got %q", value)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.LatLng{}, fmt.Errorf("bad latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.LatLng{}, fmt.Errorf("bad longitude: %w", err)
	}
	p := models.LatLng{Lat: lat, Lng: lng}
	if !finite(p) {
		return models.LatLng{}, fmt.Errorf("coordinates must be finite, got %q", value)
	}
	return p, nil
}

func finite(p models.LatLng) bool {
	return !math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0) &&
		!math.IsNaN(p.Lng) && !math.IsInf(p.Lng, 0)
}
