package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"swarmtrack/pkg/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after merging defaults, the config file,
environment variables, and flags. The OAuth token is masked.`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token := "(not set)"
	if cfg.API.OAuthToken != "" {
		token = maskToken(cfg.API.OAuthToken)
	}

	fmt.Println(ui.Bold("API:"))
	fmt.Printf("  oauth_token:  %s\n", token)
	fmt.Printf("  user_id:      %s\n", cfg.API.UserID)
	fmt.Printf("  base_url:     %s\n", cfg.API.BaseURL)
	fmt.Printf("  version:      %s\n", cfg.API.Version)
	fmt.Printf("  timeout:      %s\n", cfg.API.Timeout)

	fmt.Println(ui.Bold("Fetch:"))
	fmt.Printf("  page_limit:       %d\n", cfg.Fetch.PageLimit)
	fmt.Printf("  page_delay:       %s\n", cfg.Fetch.PageDelay)
	fmt.Printf("  rate_limit_wait:  %s\n", cfg.Fetch.RateLimitWait)
	fmt.Printf("  network_wait:     %s\n", cfg.Fetch.NetworkWait)

	fmt.Println(ui.Bold("Output:"))
	fmt.Printf("  data_dir:  %s\n", cfg.Output.DataDir)
	fmt.Printf("  dataset:   %s\n", cfg.DatasetPath())
	fmt.Printf("  summary:   %s\n", cfg.SummaryPath())
	fmt.Printf("  csv:       %s\n", cfg.CSVPath())
	fmt.Printf("  kml:       %s\n", cfg.KMLPath())

	fmt.Println(ui.Bold("Logging:"))
	fmt.Printf("  level:  %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		fmt.Printf("  file:   %s\n", cfg.Logging.File)
	}

	return nil
}

func maskToken(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
