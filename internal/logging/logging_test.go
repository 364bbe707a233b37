package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: FormatJSON, Level: "info", Writer: &buf})
	require.NoError(t, err)

	logger.Info("generated", zap.String("target", "typescript"))
	logger.Debug("hidden")
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "generated", entry["msg"])
	assert.Equal(t, "typescript", entry["target"])
}

func TestNew_ConsoleDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
}

func TestNew_VerbosityLowersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "error", Verbosity: 2, Writer: &buf})
	require.NoError(t, err)

	logger.Debug("details")
	assert.Contains(t, buf.String(), "details")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Options{Format: "xml"})
	assert.ErrorContains(t, err, `unknown format "xml"`)

	_, err = New(Options{Level: "chatty"})
	assert.ErrorContains(t, err, `level "chatty"`)
}

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(0))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(1))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(5))
}
