package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"swarmtrack/pkg/auth"
	"swarmtrack/pkg/config"
	"swarmtrack/pkg/fetcher"
	"swarmtrack/pkg/foursquare"
	"swarmtrack/pkg/logger"
	"swarmtrack/pkg/storage"
	"swarmtrack/pkg/ui"
)

var (
	downloadToken string
	downloadUser  string
)

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download your full checkin history",
	Long: `Download every checkin in your history via the Foursquare API and save
it locally as JSON.

A Foursquare OAuth token is required. It is looked up in this order:
  1. The --token flag
  2. The OAUTH_TOKEN environment variable (a .env file works too)
  3. Tokens saved with 'swarmtrack auth login'

Rate limit responses pause the download for a minute and resume
automatically. If the download aborts partway, whatever was fetched is
still saved.`,
	Example: `  # Download with the token from the environment
  swarmtrack download

  # Download someone else's public history
  swarmtrack download --user 12345`,
	Run: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().StringVar(&downloadToken, "token", "", "Foursquare OAuth token")
	downloadCmd.Flags().StringVar(&downloadUser, "user", "", "user ID to download (default \"self\")")
}

func runDownload(cmd *cobra.Command, args []string) {
	flags := make(map[string]interface{})
	if downloadToken != "" {
		flags["oauth-token"] = downloadToken
	}
	if downloadUser != "" {
		flags["user"] = downloadUser
	}
	if dataDir != "" {
		flags["data-dir"] = dataDir
	}
	if logLevel != "" {
		flags["log-level"] = logLevel
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		ui.PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		ui.PrintError("Failed to initialize logging: %v", err)
		os.Exit(1)
	}
	log := logger.GetLogger()

	// No flag or env token; fall back to saved accounts
	if cfg.API.OAuthToken == "" {
		if manager, err := auth.NewManager(); err == nil {
			if account, err := manager.RetrieveDefault(); err == nil {
				cfg.API.OAuthToken = account.Token
				if cfg.API.UserID == "" || cfg.API.UserID == "self" {
					if account.UserID != "" {
						cfg.API.UserID = account.UserID
					}
				}
				log.WithField("label", account.Label).Info("using saved token")
			}
		}
	}

	if err := cfg.RequireToken(); err != nil {
		log.Error(err.Error())
		ui.PrintError("%v", err)
		os.Exit(1)
	}

	store, err := storage.NewManager(cfg.Output.DataDir, log)
	if err != nil {
		ui.PrintError("Failed to prepare data directory: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := foursquare.NewClient(&cfg.API, log)
	f := fetcher.New(client, &cfg.Fetch, log)

	ui.PrintInfo("Downloading checkin history for %s", cfg.API.UserID)

	if err := f.Run(ctx, store, &cfg.Output, cfg.API.UserID); err != nil {
		log.WithError(err).Error("download failed")
		ui.PrintError("Download failed: %v", err)
		ui.PrintInfo("Partial results, if any, were saved to %s", cfg.DatasetPath())
		os.Exit(1)
	}

	ui.PrintSuccess("Checkin history saved to %s", cfg.DatasetPath())
}
