package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Options{Level: "info", Console: &buf, NoColor: true})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("table loaded", zap.Int("rows", 38))
	require.NoError(t, closeFn())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "table loaded")
	assert.Contains(t, out, `{"rows": 38}`)
}

func TestColouredLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Options{Level: "warn", Console: &buf})
	require.NoError(t, err)
	logger.Warn("careful")
	require.NoError(t, closeFn())
	assert.Contains(t, buf.String(), colorYellow+"WARN"+colorReset)
}

func TestFileGetsDebug(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "eda.log")
	logger, closeFn, err := New(Options{Level: "error", File: path, Console: &buf, NoColor: true})
	require.NoError(t, err)

	logger.Debug("chart written", zap.String("path", "charts/class_count.png"))
	require.NoError(t, closeFn())

	assert.Empty(t, buf.String())
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "DEBUG")
	assert.Contains(t, string(content), "chart written")
}

func TestBadLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}
