package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cuemby/hutch/pkg/api"
	"github.com/cuemby/hutch/pkg/config"
	"github.com/cuemby/hutch/pkg/inventory"
	"github.com/cuemby/hutch/pkg/log"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hutch",
	Short: "Hutch - Versioned compute API normalization layer",
	Long: `Hutch serves the v1.0 and v1.1 compute API formats over a
single internal data model: instance lifecycle states are mapped to
wire statuses, lists are paginated per version, and address and
metadata views are rendered as structured JSON or namespaced XML.`,
	Version: Version,
}

func init() {
	// Set version template
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Hutch version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	serveCmd.Flags().String("config", "", "Path to configuration file")
	serveCmd.Flags().String("listen", "", "Listen address (overrides configuration)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the versioned HTTP API over the demo instance fleet.

The server exposes the v1.0 and v1.1 compute formats under their
version prefixes, plus /healthz and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		listen, _ := cmd.Flags().GetString("listen")

		cfg := config.Default()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = loaded
		}
		if listen != "" {
			cfg.API.Listen = listen
		}

		log.Init(log.Config{
			Level:      log.Level(cfg.Log.Level),
			JSONOutput: cfg.Log.JSON,
		})

		server := api.NewServer(inventory.Seed(), cfg)
		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start(cfg.API.Listen)
		}()

		fmt.Printf("Hutch API listening on %s. Press Ctrl+C to stop.\n", cfg.API.Listen)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case <-sigCh:
			fmt.Println("\nShutting down...")
			return nil
		case err := <-errCh:
			return fmt.Errorf("API server error: %w", err)
		}
	},
}
