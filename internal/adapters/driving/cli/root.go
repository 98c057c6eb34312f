// Package cli provides the kasir command-line interface. It is the
// presentation layer: it validates user input, calls the driving
// services, and renders results. No business rules live here.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/koncoweb/kasir-go/internal/adapters/driven/config/file"
	"github.com/koncoweb/kasir-go/internal/adapters/driven/storage"
	"github.com/koncoweb/kasir-go/internal/adapters/driven/storage/sqlite"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
	"github.com/koncoweb/kasir-go/internal/core/ports/driving"
	"github.com/koncoweb/kasir-go/internal/core/services"
	"github.com/koncoweb/kasir-go/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagConfig  string
	flagVerbose bool
)

// Services used by the commands. Wired in initApp; tests may replace
// them with services over an in-memory engine.
var (
	engine          driven.Engine
	engineOwned     bool
	catalogService  driving.CatalogService
	salesService    driving.SalesService
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "kasir",
	Short: "Point-of-sale for a small retail shop",
	Long: `kasir records products, rings up cart sales, decrements stock,
and reports revenue. All data is kept in a local store; no network,
no accounts.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		return closeApp()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.kasir/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
}

// initApp loads configuration, opens the selected engine, ensures the
// schema exists, and wires the services. A schema initialization
// failure is fatal to the run: the app must not accept sales against an
// uninitialized store.
func initApp(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if engine != nil {
		// Already wired (tests install their own services).
		return nil
	}

	path := flagConfig
	if path == "" {
		var err error
		path, err = configfile.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := configfile.Load(path)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger.SetVerbose(true)
	}

	eng, err := storage.NewEngine(storage.EngineMode(cfg.Storage.Engine), cfg.Storage.Dir, cfg.Storage.Database)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}

	if err := sqlite.InitSchema(cmd.Context(), eng); err != nil {
		eng.Close() //nolint:errcheck
		return fmt.Errorf("initializing schema: %w", err)
	}

	installServices(eng)
	engineOwned = true
	return nil
}

// installServices wires the repositories and services over eng.
func installServices(eng driven.Engine) {
	engine = eng
	catalogService = services.NewCatalogService(sqlite.NewProductStore(eng))
	salesService = services.NewSalesService(sqlite.NewSaleStore(eng))
	settingsService = services.NewSettingsService(sqlite.NewSettingsStore(eng))
}

// closeApp releases the engine, but only when initApp opened it.
// Tests that install their own engine keep it across commands.
func closeApp() error {
	if engine == nil || !engineOwned {
		return nil
	}
	err := engine.Close()
	engine = nil
	engineOwned = false
	catalogService = nil
	salesService = nil
	settingsService = nil
	return err
}

// cmdContext returns the command's context, falling back to Background
// for commands constructed outside Execute (tests).
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
