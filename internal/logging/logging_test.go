package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	logger, closeLog, err := New(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Debug("food eaten", "score", 5)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "food eaten")
	assert.Contains(t, string(data), "score=5")
	assert.Contains(t, string(data), Prefix)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestNewWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, log.WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
