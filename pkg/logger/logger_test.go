package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swarmtrack/pkg/config"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&config.LoggingConfig{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestInitializeReturnsLevelError(t *testing.T) {
	err := Initialize(&config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestNewWithFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := New(&config.LoggingConfig{Level: "debug", File: path})
	require.NoError(t, err)
	l.Info("hello")

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
