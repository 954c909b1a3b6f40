package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	_ "github.com/lib/pq"

	"github.com/vegnear/vegnear/backend"
	"github.com/vegnear/vegnear/cliparse"
	"github.com/vegnear/vegnear/geo"
	"github.com/vegnear/vegnear/identity"
	"github.com/vegnear/vegnear/localstore"
	"github.com/vegnear/vegnear/models"
	"github.com/vegnear/vegnear/origin"
	"github.com/vegnear/vegnear/session"
	"github.com/vegnear/vegnear/telemetry"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the local key/value store
	store, err := localstore.Open(cfg.StorePath)
	if err != nil {
		slog.Error("local store open failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Connect to the venue backend
	var venueStore backend.Store
	switch cfg.BackendDriver {
	case cliparse.DriverPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}
		venueStore = backend.NewPostgresStore(db)
	default:
		venueStore = backend.NewRESTClient(cfg.BackendURL, cfg.BackendKey)
	}

	// Resolve identity (never fails; worst case is the fingerprint)
	platform := identity.NewHTTPPlatform(identity.PlatformConfig{
		BaseURL:     cfg.PlatformBaseURL,
		ChannelID:   cfg.ChannelID,
		IDToken:     cfg.IDToken,
		AccessToken: cfg.AccessToken,
	})
	resolver := identity.NewResolver(platform, store, cfg.FingerprintSalt, cfg.RedirectURI)
	userHash := resolver.Resolve(context.Background())
	slog.Info("identity resolved", "user_hash", userHash)

	events := telemetry.NewEmitter(venueStore, userHash)
	defer events.Close()

	sess := session.New(venueStore, events, userHash, cfg.VenueLimit)
	_ = sess.SetMode(cfg.Mode) // validated by cliparse
	selector := origin.NewSelector(store, origin.EnvGeolocator{})

	if err := sess.Load(context.Background()); err != nil {
		// Shown as-is, no retry; the user can run "reload"
		fmt.Fprintln(os.Stderr, "error:", err)
	}

	runLoop(sess, selector)
}

const usage = `commands:
  list                      show venues within the current time budget
  origin <choice>           gps | station | campus | custom1 | custom2
  save <slot> <lat> <lng>   store coordinates in custom1 or custom2
  budget <10|15|15+>        set the time budget
  mode <walk|cycle>         set the travel mode
  next / prev               swipe through the visible cards
  vote <venue-id>           cast a +1 for a venue
  nav <venue-id>            print the maps link for a venue
  reload                    refetch the venue list
  quit`

func runLoop(sess *session.Session, selector *origin.Selector) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(usage)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			fmt.Println(usage)
		case "list":
			printList(sess)
		case "reload":
			if err := sess.Load(context.Background()); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
		case "origin":
			if len(args) != 1 {
				fmt.Println("usage: origin <gps|station|campus|custom1|custom2>")
				continue
			}
			selectOrigin(sess, selector, scanner, args[0])
		case "save":
			if len(args) != 3 {
				fmt.Println("usage: save <custom1|custom2> <lat> <lng>")
				continue
			}
			savePoint(selector, args[0], args[1], args[2])
		case "budget":
			if len(args) != 1 {
				fmt.Println("usage: budget <10|15|15+>")
				continue
			}
			setBudget(sess, args[0])
		case "mode":
			if len(args) != 1 {
				fmt.Println("usage: mode <walk|cycle>")
				continue
			}
			if err := sess.SetMode(args[0]); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
		case "next", "prev":
			if v := sess.Swipe(cmd == "next"); v != nil {
				printVenue(sess, *v)
			} else {
				fmt.Println("(no venues in view)")
			}
		case "vote":
			if len(args) != 1 {
				fmt.Println("usage: vote <venue-id>")
				continue
			}
			count, err := sess.Upvote(context.Background(), args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				continue
			}
			fmt.Printf("+1 recorded, now %s\n", humanize.Comma(int64(count)))
		case "nav":
			if len(args) != 1 {
				fmt.Println("usage: nav <venue-id>")
				continue
			}
			url, err := sess.Navigate(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				continue
			}
			fmt.Println(url)
		default:
			fmt.Printf("unknown command %q (try help)\n", cmd)
		}
	}
}

func selectOrigin(sess *session.Session, selector *origin.Selector, scanner *bufio.Scanner, choice string) {
	point, err := selector.Select(context.Background(), choice)
	if errors.Is(err, origin.ErrNoSavedPoint) {
		// Prompt once, save, then re-select
		fmt.Printf("no point saved for %s, enter \"lat lng\": ", choice)
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) != 2 {
			fmt.Println("expected two numbers")
			return
		}
		savePoint(selector, choice, parts[0], parts[1])
		point, err = selector.Select(context.Background(), choice)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}

	sess.SetOrigin(point)
	if point == nil {
		fmt.Println("no origin; venues shown unfiltered")
		return
	}
	fmt.Printf("origin set to %.4f,%.4f\n", point.Lat, point.Lng)
}

func savePoint(selector *origin.Selector, slot, latStr, lngStr string) {
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lng, err2 := strconv.ParseFloat(lngStr, 64)
	if err1 != nil || err2 != nil {
		fmt.Println("coordinates must be numbers")
		return
	}
	if err := selector.SaveCustom(slot, models.LatLng{Lat: lat, Lng: lng}); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}
	fmt.Printf("saved %s\n", slot)
}

func setBudget(sess *session.Session, arg string) {
	minutes := 0
	switch arg {
	case "10":
		minutes = models.Budget10
	case "15":
		minutes = models.Budget15
	case "15+":
		minutes = models.BudgetAll
	default:
		fmt.Println("budget must be 10, 15 or 15+")
		return
	}
	if err := sess.SetBudget(minutes); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
}

func printList(sess *session.Session) {
	visible := sess.Visible()
	if len(visible) == 0 {
		fmt.Println("(no venues within the current budget)")
		return
	}
	for _, v := range visible {
		printVenue(sess, v)
	}
}

func printVenue(sess *session.Session, v models.RankedVenue) {
	eta := "-"
	if sess.Origin() != nil {
		eta = geo.FormatMinutes(v.ETASeconds)
	}
	vegType := ""
	if v.VegType != nil {
		vegType = " [" + *v.VegType + "]"
	}
	fmt.Printf("%-10s %-24s%s  %6s  +%s\n",
		v.ID, v.Name, vegType, eta, humanize.Comma(int64(v.RecoCount)))
}
