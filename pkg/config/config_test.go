package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "self", cfg.API.UserID)
	assert.Equal(t, "https://api.foursquare.com/v2", cfg.API.BaseURL)
	assert.Equal(t, 50, cfg.Fetch.PageLimit)
	assert.Equal(t, 500*time.Millisecond, cfg.Fetch.PageDelay)
	assert.Equal(t, 60*time.Second, cfg.Fetch.RateLimitWait)
	assert.Equal(t, 5*time.Second, cfg.Fetch.NetworkWait)
	assert.Equal(t, "data", cfg.Output.DataDir)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OAUTH_TOKEN", "tok123")
	t.Setenv("USER_ID", "12345")
	t.Setenv("SWARMTRACK_DATA_DIR", "/tmp/checkins")
	t.Setenv("SWARMTRACK_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, "tok123", cfg.API.OAuthToken)
	assert.Equal(t, "12345", cfg.API.UserID)
	assert.Equal(t, "/tmp/checkins", cfg.Output.DataDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
api:
  user_id: "98765"
fetch:
  page_limit: 25
logging:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "98765", cfg.API.UserID)
	assert.Equal(t, 25, cfg.Fetch.PageLimit)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Untouched sections keep defaults
	assert.Equal(t, "data", cfg.Output.DataDir)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fetch.PageLimit = 0
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page limit")
	assert.Contains(t, err.Error(), "log level")
}

func TestRequireToken(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.RequireToken())

	cfg.API.OAuthToken = "tok"
	assert.NoError(t, cfg.RequireToken())
}

func TestMergeCommandLineFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MergeCommandLineFlags(map[string]interface{}{
		"user":      "override",
		"data-dir":  "elsewhere",
		"log-level": "error",
	})

	assert.Equal(t, "override", cfg.API.UserID)
	assert.Equal(t, "elsewhere", cfg.Output.DataDir)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestPaths(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("data", "all_checkins.json"), cfg.DatasetPath())
	assert.Equal(t, filepath.Join("data", "checkins_summary.json"), cfg.SummaryPath())
}
