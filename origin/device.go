// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package origin

import (
	"context"
	"errors"
	"os"

	"github.com/vegnear/vegnear/models"
)

// defaultCoordsVar is read by EnvGeolocator when no variable is named.
const defaultCoordsVar = "VEGNEAR_DEVICE_COORDS"

// EnvGeolocator reads a fixed "lat,lng" position from the environment.
// It stands in for a real positioning source on machines without one.
type EnvGeolocator struct {
	// Var overrides the environment variable name.
	Var string
}

// Current implements Geolocator.
func (g EnvGeolocator) Current(ctx context.Context) (models.LatLng, error) {
	if err := ctx.Err(); err != nil {
		return models.LatLng{}, err
	}
	name := g.Var
	if name == "" {
		name = defaultCoordsVar
	}
	value := os.Getenv(name)
	if value == "" {
		return models.LatLng{}, errors.New("device position unavailable")
	}
	return ParsePoint(value)
}
