package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/tripwise/internal/bus"
	"github.com/mark3labs/tripwise/internal/catalog"
	"github.com/mark3labs/tripwise/internal/config"
	"github.com/mark3labs/tripwise/internal/logger"
	"github.com/mark3labs/tripwise/internal/tui"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	catalog string
	city    string
	events  bool
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.catalog, "catalog", "", "POI catalog YAML file (default: built-in Istanbul catalog)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.city, "city", "", "Destination preselected in the wizard")
	rootCmd.PersistentFlags().BoolVar(&rootFlags.events, "events", false, "Log trip and selection events to the log file")
}

// loadConfig resolves config files and env, applies command-line overrides
// and configures the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogFile = rootFlags.catalog
	}
	if flags.Changed("city") {
		cfg.DefaultCity = rootFlags.city
	}
	if flags.Changed("events") {
		cfg.Events = rootFlags.events
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}
	return cfg, nil
}

// loadCatalog returns the catalog from path, or the built-in one.
func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Istanbul(), nil
	}
	c, err := catalog.Load(path)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("Loaded %d POIs for %s from %s", c.Len(), c.City, path)
	return c, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	c, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	b, err := openBus(cfg)
	if err != nil {
		return err
	}
	defer closeBus(b)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := tui.NewApp(c,
		tui.WithPublisher(b),
		tui.WithDefaultCity(cfg.City()),
	)
	return tui.Run(ctx, app)
}

// openBus starts the event bus, mirroring events to the log when enabled.
func openBus(cfg *config.Config) (*bus.Bus, error) {
	var opts []bus.Option
	if cfg.Events {
		opts = append(opts, bus.WithEventLog(logger.Default.With("events")))
	}
	return bus.New(opts...)
}

func closeBus(b *bus.Bus) {
	if err := b.Close(); err != nil {
		logger.Warn("closing event bus: %v", err)
	}
}
