package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"swarmtrack/pkg/checkin"
	"swarmtrack/pkg/config"
	"swarmtrack/pkg/logger"
	"swarmtrack/pkg/storage"
	"swarmtrack/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	dataDir    string
	inputFile  string
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swarmtrack",
	Short: "Download and explore your Swarm checkin history",
	Long: `swarmtrack downloads your full Foursquare/Swarm checkin history and
lets you search, chart, and export it.

Features:
  - Full history download with automatic rate limit handling
  - Secure OAuth token storage using the system keychain
  - Free-text and structured search over your checkins
  - Yearly, monthly, city, venue, and dining breakdowns
  - CSV and KML export for spreadsheets and map viewers

Run without a subcommand to start an interactive search session.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.Enabled = false
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		list, err := loadCheckins(cfg)
		if err != nil {
			return err
		}
		return runInteractive(list)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is $HOME/.swarmtrack.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding downloaded checkin data")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "checkin dataset file (overrides data dir)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.SetVersionTemplate(`swarmtrack {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig builds the effective configuration from file, environment, and
// global flags, then initializes logging
func loadConfig() (*config.Config, error) {
	flags := make(map[string]interface{})
	if dataDir != "" {
		flags["data-dir"] = dataDir
	}
	if logLevel != "" {
		flags["log-level"] = logLevel
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	return cfg, nil
}

// loadCheckins reads and normalizes the downloaded dataset
func loadCheckins(cfg *config.Config) ([]checkin.Checkin, error) {
	path := cfg.DatasetPath()
	if inputFile != "" {
		path = inputFile
	}

	raw, err := storage.LoadCheckins(path)
	if err != nil {
		return nil, fmt.Errorf("no checkin data at %s; run 'swarmtrack download' first: %w", path, err)
	}

	list := checkin.NormalizeAll(raw)
	checkin.SortNewestFirst(list)
	return list, nil
}
