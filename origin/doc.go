// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package origin resolves the reference point for distance and ETA.

Five choices: device geolocation ("gps", 6-second timeout), two fixed
landmarks ("station", "campus"), and two user-defined slots ("custom1",
"custom2") persisted in the local store.

	p, err := selector.Select(ctx, origin.ChoiceGPS)

States: unset → resolving → resolved | failed. Geolocation failure
degrades silently to no origin (nil point, StateFailed); the user must
re-select to retry. An empty custom slot returns ErrNoSavedPoint so the
caller can prompt for coordinates and SaveCustom.
*/
package origin
