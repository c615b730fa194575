package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	// Неизвестный уровень трактуется как info
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestLogger_FiltersByLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	log, err := New(logFile, "warn")
	require.NoError(t, err)

	log.Info("info message %d", 1)
	log.Warn("warn message %d", 2)
	log.Error("error message %d", 3)
	require.NoError(t, log.Close())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	assert.NotContains(t, string(content), "info message 1")
	assert.Contains(t, string(content), "[WARN] warn message 2")
	assert.Contains(t, string(content), "[ERROR] error message 3")
}

func TestLogger_StdoutOnlyWithoutFile(t *testing.T) {
	log, err := New("", "info")
	require.NoError(t, err)
	require.NoError(t, log.Close())
}
