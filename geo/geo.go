// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geo

import (
	"fmt"
	"math"

	"github.com/vegnear/vegnear/models"
)

const earthRadiusKm = 6371.0

// Assumed constant speeds, km/h.
const (
	walkSpeedKmh  = 4.5
	cycleSpeedKmh = 15.0
)

// minETASeconds is the display floor: nothing is ever shown as closer
// than a minute away.
const minETASeconds = 60

// HaversineKm computes the great-circle distance between two points in
// kilometers.
func HaversineKm(a, b models.LatLng) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// SpeedKmh returns the assumed speed for a travel mode. Unknown modes
// fall back to walking.
func SpeedKmh(mode string) float64 {
	if mode == models.ModeCycle {
		return cycleSpeedKmh
	}
	return walkSpeedKmh
}

// ETASeconds converts a straight-line distance into a travel-time
// estimate at the mode's constant speed, floored at 60 seconds.
//
// TODO: replace with a routing-based estimate once the backend exposes
// one; straight-line times undershoot in dense street grids.
func ETASeconds(distanceKm float64, mode string) int {
	sec := int(math.Round(distanceKm / SpeedKmh(mode) * 3600))
	if sec < minETASeconds {
		return minETASeconds
	}
	return sec
}

// FormatMinutes renders an ETA as whole minutes for display, e.g. "4 分".
func FormatMinutes(etaSeconds int) string {
	min := int(math.Round(float64(etaSeconds) / 60))
	if min < 1 {
		min = 1
	}
	return fmt.Sprintf("%d 分", min)
}

// DirectionsURL builds the maps deep link for a venue, opened in a new
// browsing context by the caller.
func DirectionsURL(dest models.LatLng, mode string) string {
	travel := "walking"
	if mode == models.ModeCycle {
		travel = "bicycling"
	}
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&destination=%.6f,%.6f&travelmode=%s",
		dest.Lat, dest.Lng, travel,
	)
}
