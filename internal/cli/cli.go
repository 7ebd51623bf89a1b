// Package cli wires configuration, the cache, the scraper, and the places
// client into the interactive nps-explorer command.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lllinda/nps-explorer/internal/cache"
	"github.com/lllinda/nps-explorer/internal/config"
	"github.com/lllinda/nps-explorer/internal/logger"
	"github.com/lllinda/nps-explorer/internal/places"
	"github.com/lllinda/nps-explorer/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagCachePath    string
	flagCacheBackend string
	flagDelayMS      int
	flagVerbose      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nps-explorer",
		Short: "Browse national park sites by state with nearby places",
		Long: `An interactive tool that scrapes nps.gov for national sites by U.S. state
and augments a selected site with nearby points of interest from the
MapQuest places API. Responses are cached on disk so repeat runs are cheap.`,
		RunE:          runExplore,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagCachePath, "cache-path", "", "Cache location (default from CACHE_PATH)")
	cmd.Flags().StringVar(&flagCacheBackend, "cache-backend", "", "Cache backend: file or sqlite (default from CACHE_BACKEND)")
	cmd.Flags().IntVar(&flagDelayMS, "delay-ms", -1, "Politeness delay before network fetches (default from FETCH_DELAY_MS)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// openStore picks the cache backend.
func openStore(backend, path string) (cache.Store, error) {
	switch backend {
	case "", "file":
		return cache.OpenFile(path)
	case "sqlite":
		return cache.OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s (must be 'file' or 'sqlite')", backend)
	}
}

// runExplore is the main command logic
func runExplore(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Flags override the environment
	if flagCachePath != "" {
		cfg.CachePath = flagCachePath
	}
	if flagCacheBackend != "" {
		cfg.CacheBackend = strings.ToLower(flagCacheBackend)
	}
	if flagDelayMS >= 0 {
		cfg.FetchDelayMS = flagDelayMS
	}

	store, err := openStore(cfg.CacheBackend, cfg.CachePath)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer store.Close()

	logger.Debug("session starting", logger.Fields{
		"cache_backend": cfg.CacheBackend,
		"cache_path":    cfg.CachePath,
		"delay":         cfg.FetchDelay().String(),
	})

	fetcher := cache.NewFetcher(store, cfg.FetchDelay())
	lister := scraper.New(fetcher, cfg.NPSBaseURL)
	finder := places.NewClient(cfg.MapQuestAPIKey, cfg.PlacesBaseURL, fetcher)

	session := NewSession(lister, finder, os.Stdin, os.Stdout)
	start := time.Now()
	if err := session.Run(); err != nil {
		return err
	}

	logger.Debug("session finished", logger.Fields{
		"duration": time.Since(start).String(),
		"counters": logger.CountersSnapshot(),
	})
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
