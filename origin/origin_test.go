package origin

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/vegnear/vegnear/models"
	"github.com/vegnear/vegnear/testutil"
)

// locatorFunc adapts a function to the Geolocator interface.
type locatorFunc func(ctx context.Context) (models.LatLng, error)

func (f locatorFunc) Current(ctx context.Context) (models.LatLng, error) {
	return f(ctx)
}

func TestSelectLandmark(t *testing.T) {
	store := testutil.OpenTestStore(t)
	s := NewSelector(store, nil)

	tests := []struct {
		choice   string
		expected models.LatLng
	}{
		{ChoiceStation, models.LatLng{Lat: 22.9971, Lng: 120.2125}},
		{ChoiceCampus, models.LatLng{Lat: 22.9976, Lng: 120.2191}},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			p, err := s.Select(context.Background(), tt.choice)
			if err != nil {
				t.Fatalf("Select failed: %v", err)
			}
			if p == nil || *p != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, p)
			}
			if s.State() != StateResolved {
				t.Errorf("Expected resolved state, got %q", s.State())
			}
		})
	}
}

func TestCustomSlotRoundTrip(t *testing.T) {
	store := testutil.OpenTestStore(t)
	s := NewSelector(store, nil)

	// Empty slot asks the caller to prompt
	_, err := s.Select(context.Background(), ChoiceCustom1)
	if !errors.Is(err, ErrNoSavedPoint) {
		t.Fatalf("Expected ErrNoSavedPoint for empty slot, got %v", err)
	}

	saved := models.LatLng{Lat: 22.9976, Lng: 120.2191}
	if err := s.SaveCustom(ChoiceCustom1, saved); err != nil {
		t.Fatalf("SaveCustom failed: %v", err)
	}

	// Reselecting yields the same coordinates without re-prompting
	for i := 0; i < 2; i++ {
		p, err := s.Select(context.Background(), ChoiceCustom1)
		if err != nil {
			t.Fatalf("Select after save failed: %v", err)
		}
		if p == nil || *p != saved {
			t.Errorf("Expected %v back, got %v", saved, p)
		}
	}
}

func TestCustomSlotsIndependent(t *testing.T) {
	store := testutil.OpenTestStore(t)
	s := NewSelector(store, nil)

	if err := s.SaveCustom(ChoiceCustom1, models.LatLng{Lat: 1, Lng: 2}); err != nil {
		t.Fatalf("SaveCustom failed: %v", err)
	}

	_, err := s.Select(context.Background(), ChoiceCustom2)
	if !errors.Is(err, ErrNoSavedPoint) {
		t.Errorf("Expected custom2 to stay empty, got %v", err)
	}
}

func TestSaveCustomValidation(t *testing.T) {
	store := testutil.OpenTestStore(t)
	s := NewSelector(store, nil)

	if err := s.SaveCustom(ChoiceStation, models.LatLng{Lat: 1, Lng: 2}); err == nil {
		t.Error("Expected error saving into a landmark choice")
	}
	if err := s.SaveCustom(ChoiceCustom1, models.LatLng{Lat: math.NaN(), Lng: 2}); err == nil {
		t.Error("Expected error saving non-finite latitude")
	}
	if err := s.SaveCustom(ChoiceCustom2, models.LatLng{Lat: 1, Lng: math.Inf(1)}); err == nil {
		t.Error("Expected error saving non-finite longitude")
	}
}

func TestSelectUnknownChoice(t *testing.T) {
	store := testutil.OpenTestStore(t)
	s := NewSelector(store, nil)

	if _, err := s.Select(context.Background(), "moon"); err == nil {
		t.Error("Expected error for unknown choice")
	}
}

func TestGeolocationSuccess(t *testing.T) {
	store := testutil.OpenTestStore(t)
	pos := models.LatLng{Lat: 22.99, Lng: 120.21}
	s := NewSelector(store, locatorFunc(func(ctx context.Context) (models.LatLng, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("Expected a deadline on the geolocation context")
		}
		return pos, nil
	}))

	p, err := s.Select(context.Background(), ChoiceGPS)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if p == nil || *p != pos {
		t.Errorf("Expected %v, got %v", pos, p)
	}
	if s.State() != StateResolved {
		t.Errorf("Expected resolved state, got %q", s.State())
	}
}

func TestGeolocationFailureDegrades(t *testing.T) {
	store := testutil.OpenTestStore(t)
	s := NewSelector(store, locatorFunc(func(ctx context.Context) (models.LatLng, error) {
		return models.LatLng{}, errors.New("user denied")
	}))

	p, err := s.Select(context.Background(), ChoiceGPS)
	if err != nil {
		t.Fatalf("Geolocation failure must not be an error, got %v", err)
	}
	if p != nil {
		t.Errorf("Expected no origin, got %v", p)
	}
	if s.State() != StateFailed {
		t.Errorf("Expected failed state, got %q", s.State())
	}
}

func TestGeolocationUnsupported(t *testing.T) {
	store := testutil.OpenTestStore(t)
	s := NewSelector(store, nil)

	p, err := s.Select(context.Background(), ChoiceGPS)
	if err != nil || p != nil {
		t.Errorf("Expected silent degrade, got point=%v err=%v", p, err)
	}
	if s.State() != StateFailed {
		t.Errorf("Expected failed state, got %q", s.State())
	}
}

func TestGeolocationNonFinite(t *testing.T) {
	store := testutil.OpenTestStore(t)
	s := NewSelector(store, locatorFunc(func(ctx context.Context) (models.LatLng, error) {
		return models.LatLng{Lat: math.NaN(), Lng: 120.21}, nil
	}))

	p, err := s.Select(context.Background(), ChoiceGPS)
	if err != nil || p != nil {
		t.Errorf("Expected silent degrade on non-finite position, got point=%v err=%v", p, err)
	}
	if s.State() != StateFailed {
		t.Errorf("Expected failed state, got %q", s.State())
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.LatLng
		wantErr bool
	}{
		{"plain", "22.9976,120.2191", models.LatLng{Lat: 22.9976, Lng: 120.2191}, false},
		{"spaces", " 22.9976 , 120.2191 ", models.LatLng{Lat: 22.9976, Lng: 120.2191}, false},
		{"negative", "-33.8688,151.2093", models.LatLng{Lat: -33.8688, Lng: 151.2093}, false},
		{"missing part", "22.9976", models.LatLng{}, true},
		{"extra part", "1,2,3", models.LatLng{}, true},
		{"not a number", "north,east", models.LatLng{}, true},
		{"nan", "NaN,120.2", models.LatLng{}, true},
		{"inf", "22.99,+Inf", models.LatLng{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoint(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePoint(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePoint(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	p := models.LatLng{Lat: 22.9976, Lng: 120.2191}
	got, err := ParsePoint(FormatPoint(p))
	if err != nil {
		t.Fatalf("Round trip failed: %v", err)
	}
	if got != p {
		t.Errorf("Expected %v back, got %v", p, got)
	}
}

func TestEnvGeolocator(t *testing.T) {
	t.Setenv("VEGNEAR_DEVICE_COORDS", "22.99,120.21")

	p, err := EnvGeolocator{}.Current(context.Background())
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if p != (models.LatLng{Lat: 22.99, Lng: 120.21}) {
		t.Errorf("Unexpected position %v", p)
	}

	t.Setenv("VEGNEAR_DEVICE_COORDS", "")
	if _, err := (EnvGeolocator{}).Current(context.Background()); err == nil {
		t.Error("Expected error with no position configured")
	}
}
