package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/vegnear/vegnear/backend"
	"github.com/vegnear/vegnear/models"
)

// Backend driver names
const (
	DriverREST     = "rest"
	DriverPostgres = "postgres"
)

type Config struct {
	// Backend
	BackendDriver string
	BackendURL    string // rest driver
	BackendKey    string // rest driver
	DatabaseURL   string // postgres driver

	// Platform login SDK
	PlatformBaseURL string
	ChannelID       string
	IDToken         string
	AccessToken     string
	RedirectURI     string

	// Identity fallback
	FingerprintSalt string

	// Local state and display
	StorePath  string
	VenueLimit int
	Mode       string
}

// ParseFlags validates flags with environment fallback. A .env file in
// the working directory is loaded first when present.
func ParseFlags(args []string) (Config, error) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("vegnear", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendDriver, "driver", "", "Backend driver (rest or postgres)")
	fs.StringVar(&cfg.BackendURL, "b", "", "Backend base URL (rest driver)")
	fs.StringVar(&cfg.BackendKey, "k", "", "Backend API key (prefer env)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres driver)")
	fs.StringVar(&cfg.StorePath, "s", "", "Local store path")
	fs.StringVar(&cfg.FingerprintSalt, "fingerprint-salt", "", "Fingerprint salt (prefer env)")
	fs.IntVar(&cfg.VenueLimit, "n", 0, "Venue fetch limit")
	fs.StringVar(&cfg.Mode, "m", "", "Travel mode (walk or cycle)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.BackendDriver == "" {
		cfg.BackendDriver = os.Getenv("BACKEND_DRIVER")
	}
	if cfg.BackendDriver == "" {
		cfg.BackendDriver = DriverREST
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = os.Getenv("BACKEND_URL")
	}
	if cfg.BackendKey == "" {
		cfg.BackendKey = os.Getenv("BACKEND_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	cfg.PlatformBaseURL = os.Getenv("PLATFORM_BASE_URL")
	if cfg.PlatformBaseURL == "" {
		cfg.PlatformBaseURL = "https://api.line.me"
	}
	cfg.ChannelID = os.Getenv("PLATFORM_CHANNEL_ID")
	cfg.IDToken = os.Getenv("PLATFORM_ID_TOKEN")
	cfg.AccessToken = os.Getenv("PLATFORM_ACCESS_TOKEN")
	cfg.RedirectURI = os.Getenv("PLATFORM_REDIRECT_URI")
	if cfg.RedirectURI == "" {
		cfg.RedirectURI = "https://localhost/callback"
	}

	if cfg.FingerprintSalt == "" {
		cfg.FingerprintSalt = os.Getenv("FINGERPRINT_SALT")
	}
	if cfg.FingerprintSalt == "" {
		return Config{}, errors.New("FINGERPRINT_SALT required")
	}

	if cfg.StorePath == "" {
		cfg.StorePath = os.Getenv("STORE_PATH")
	}
	if cfg.StorePath == "" {
		cfg.StorePath = "vegnear.db"
	}

	if cfg.VenueLimit == 0 {
		if limitStr := os.Getenv("VENUE_LIMIT"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil {
				return Config{}, errors.New("invalid VENUE_LIMIT env variable")
			}
			cfg.VenueLimit = limit
		} else {
			cfg.VenueLimit = backend.DefaultVenueLimit
		}
	}
	if cfg.VenueLimit < 1 || cfg.VenueLimit > backend.DefaultVenueLimit {
		return Config{}, fmt.Errorf("VENUE_LIMIT must be 1-%d", backend.DefaultVenueLimit)
	}

	if cfg.Mode == "" {
		cfg.Mode = os.Getenv("TRAVEL_MODE")
	}
	if cfg.Mode == "" {
		cfg.Mode = models.ModeWalk
	}
	if cfg.Mode != models.ModeWalk && cfg.Mode != models.ModeCycle {
		return Config{}, fmt.Errorf("travel mode must be %q or %q", models.ModeWalk, models.ModeCycle)
	}

	// Driver-specific requirements
	switch cfg.BackendDriver {
	case DriverREST:
		if cfg.BackendURL == "" {
			return Config{}, errors.New("backend URL required (use -b or BACKEND_URL env)")
		}
		if cfg.BackendKey == "" {
			return Config{}, errors.New("BACKEND_KEY required")
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown backend driver %q", cfg.BackendDriver)
	}

	return cfg, nil
}
