// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package geo implements the distance and ETA approximation.

Distance is great-circle (haversine, Earth radius 6371 km). ETA divides
distance by a fixed assumed speed (4.5 km/h walking, 15 km/h cycling)
and floors the result at 60 seconds. Both are pure functions with no
network round trip.

	d := geo.HaversineKm(origin, models.LatLng{Lat: v.Lat, Lng: v.Lng})
	eta := geo.ETASeconds(d, models.ModeWalk)
	label := geo.FormatMinutes(eta) // "4 分"

The package also builds the outbound maps deep link:

	url := geo.DirectionsURL(dest, models.ModeWalk)
*/
package geo
