package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/launchdeck/internal/config"
	"github.com/aretw0/launchdeck/internal/platform"
)

var (
	verbose    bool
	configFile string

	// cfg and logCloser are set by PersistentPreRunE.
	cfg       *config.Config
	logCloser io.Closer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "launchdeck",
	Short: "A local helper that launches programs and keeps launch items and notes",
	Long: `launchdeck runs next to a browser dashboard on this machine.
It opens programs and folders with the OS "open" command and stores
launch items and notes as plain JSON (or YAML, or SQLite) files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config for version command
		if cmd.Name() == "version" {
			return nil
		}
		if configFile == "" {
			if wd, err := os.Getwd(); err == nil {
				if found, err := platform.FindConfig(wd); err == nil {
					configFile = found
				}
			}
		}

		var err error
		cfg, err = config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}

		var logger *slog.Logger
		logger, logCloser, err = platform.NewLogger(platform.LogConfig{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			File:   cfg.Log.File,
		})
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		slog.Debug("configuration loaded", "config_file", configFile, "data_dir", cfg.Data.Dir, "backend", cfg.Storage.Backend)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: nearest launchdeck.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "./data", "directory holding the collections")
	rootCmd.PersistentFlags().String("backend", "json", "storage backend: json, yaml or sqlite")
	rootCmd.PersistentFlags().Bool("read-only", false, "refuse all writes")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to a rotated file instead of stderr")
}

// openApp wires the services from the loaded configuration.
func openApp() (*platform.App, error) {
	app, err := platform.New(cfg.Data.Dir,
		platform.WithBackend(cfg.Storage.Backend),
		platform.WithStrict(cfg.Storage.Strict),
		platform.WithReadOnly(cfg.Storage.ReadOnly),
		platform.WithLaunchAllow(cfg.Launcher.Allow...),
		platform.WithDevSafety(cfg.DevSafety),
		platform.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Data.Dir, err)
	}
	return app, nil
}
