package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the checkin archiver
type Config struct {
	// Foursquare API access
	API APIConfig `yaml:"api" json:"api"`

	// Fetch loop pacing and retry waits
	Fetch FetchConfig `yaml:"fetch" json:"fetch"`

	// Output locations
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// APIConfig holds Foursquare API configuration
type APIConfig struct {
	OAuthToken string        `yaml:"oauth_token" json:"oauth_token"`
	UserID     string        `yaml:"user_id" json:"user_id"`
	BaseURL    string        `yaml:"base_url" json:"base_url"`
	Version    string        `yaml:"version" json:"version"`
	Locale     string        `yaml:"locale" json:"locale"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
}

// FetchConfig holds fetch loop configuration
type FetchConfig struct {
	// PageLimit is the number of checkins requested per page
	PageLimit int `yaml:"page_limit" json:"page_limit"`
	// PageDelay is the fixed delay between successful page fetches
	PageDelay time.Duration `yaml:"page_delay" json:"page_delay"`
	// RateLimitWait is the fixed wait after an HTTP 429
	RateLimitWait time.Duration `yaml:"rate_limit_wait" json:"rate_limit_wait"`
	// NetworkWait is the fixed wait after a transient network error
	NetworkWait time.Duration `yaml:"network_wait" json:"network_wait"`
}

// OutputConfig holds output file configuration
type OutputConfig struct {
	DataDir     string `yaml:"data_dir" json:"data_dir"`
	DatasetFile string `yaml:"dataset_file" json:"dataset_file"`
	SummaryFile string `yaml:"summary_file" json:"summary_file"`
	CSVFile     string `yaml:"csv_file" json:"csv_file"`
	KMLFile     string `yaml:"kml_file" json:"kml_file"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			UserID:  "self",
			BaseURL: "https://api.foursquare.com/v2",
			Version: "20260220",
			Locale:  "en",
			Timeout: 30 * time.Second,
		},
		Fetch: FetchConfig{
			PageLimit:     50,
			PageDelay:     500 * time.Millisecond,
			RateLimitWait: 60 * time.Second,
			NetworkWait:   5 * time.Second,
		},
		Output: OutputConfig{
			DataDir:     "data",
			DatasetFile: "all_checkins.json",
			SummaryFile: "checkins_summary.json",
			CSVFile:     "checkins.csv",
			KMLFile:     "checkins.kml",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if token := os.Getenv("OAUTH_TOKEN"); token != "" {
		c.API.OAuthToken = token
	}
	if userID := os.Getenv("USER_ID"); userID != "" {
		c.API.UserID = userID
	}
	if dataDir := os.Getenv("SWARMTRACK_DATA_DIR"); dataDir != "" {
		c.Output.DataDir = dataDir
	}
	if logLevel := os.Getenv("SWARMTRACK_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for a config file in standard locations
func (c *Config) findConfigFile() string {
	locations := []string{
		".swarmtrack.yaml",
		".swarmtrack.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "swarmtrack", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".swarmtrack.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is structurally valid. The OAuth token
// is deliberately not validated here: search and export commands work on the
// local dataset without one. Use RequireToken before hitting the API.
func (c *Config) Validate() error {
	var errs []error

	if c.API.UserID == "" {
		errs = append(errs, errors.New("user id is required"))
	}
	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("API base URL is required"))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, errors.New("API timeout must be positive"))
	}
	if c.Fetch.PageLimit <= 0 {
		errs = append(errs, errors.New("page limit must be positive"))
	}
	if c.Fetch.PageDelay < 0 || c.Fetch.RateLimitWait < 0 || c.Fetch.NetworkWait < 0 {
		errs = append(errs, errors.New("fetch delays cannot be negative"))
	}
	if c.Output.DataDir == "" {
		errs = append(errs, errors.New("data directory is required"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// RequireToken returns an error when no OAuth token is configured
func (c *Config) RequireToken() error {
	if c.API.OAuthToken == "" {
		return errors.New("OAUTH_TOKEN not set; export it, add it to .env, or run 'swarmtrack auth login'")
	}
	return nil
}

// DatasetPath returns the path of the full checkin dataset file
func (c *Config) DatasetPath() string {
	return filepath.Join(c.Output.DataDir, c.Output.DatasetFile)
}

// SummaryPath returns the path of the summary projection file
func (c *Config) SummaryPath() string {
	return filepath.Join(c.Output.DataDir, c.Output.SummaryFile)
}

// CSVPath returns the default CSV export path
func (c *Config) CSVPath() string {
	return filepath.Join(c.Output.DataDir, c.Output.CSVFile)
}

// KMLPath returns the default KML export path
func (c *Config) KMLPath() string {
	return filepath.Join(c.Output.DataDir, c.Output.KMLFile)
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if token, ok := flags["oauth-token"].(string); ok && token != "" {
		c.API.OAuthToken = token
	}
	if userID, ok := flags["user"].(string); ok && userID != "" {
		c.API.UserID = userID
	}
	if dataDir, ok := flags["data-dir"].(string); ok && dataDir != "" {
		c.Output.DataDir = dataDir
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence.
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".swarmtrack.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
