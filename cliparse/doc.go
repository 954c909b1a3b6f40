// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first when present.
CLI flags take precedence over environment variables.

# CLI Flags

	-driver            Backend driver (rest or postgres)
	-b                 Backend base URL (rest driver)
	-k                 Backend API key (prefer env)
	-d                 Database URL (postgres driver)
	-s                 Local store path
	-n                 Venue fetch limit (1-100)
	-m                 Travel mode (walk or cycle)
	-fingerprint-salt  Fingerprint salt (prefer env)

# Environment Variables

	BACKEND_DRIVER         → -driver   (default: rest)
	BACKEND_URL            → -b        (required for rest)
	BACKEND_KEY            → -k        (required for rest)
	DATABASE_URL           → -d        (required for postgres)
	STORE_PATH             → -s        (default: vegnear.db)
	VENUE_LIMIT            → -n        (default: 100)
	TRAVEL_MODE            → -m        (default: walk)
	FINGERPRINT_SALT       → -fingerprint-salt (required)
	PLATFORM_BASE_URL      (default: https://api.line.me)
	PLATFORM_CHANNEL_ID
	PLATFORM_ID_TOKEN
	PLATFORM_ACCESS_TOKEN
	PLATFORM_REDIRECT_URI  (default: https://localhost/callback)
	VEGNEAR_DEVICE_COORDS  "lat,lng" device position for the gps origin
*/
package cliparse
