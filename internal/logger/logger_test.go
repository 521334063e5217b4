package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deepfloor/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"WARNING", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"loud", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := build(config.LoggingConfig{Level: "WARN", Console: true}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	log.Info("quiet")
	log.Warn("generation exhausted", zap.Int("depth", 3))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "generation exhausted")
	assert.Contains(t, out, "depth")
}

func TestFileSinkWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "deepfloor.log")
	log, err := build(config.LoggingConfig{
		Level: "DEBUG",
		File:  config.LogFileConfig{Enabled: true, Path: path, MaxSizeMB: 1},
	}, zapcore.AddSync(&bytes.Buffer{}))
	require.NoError(t, err)

	log.Named("cache").Debug("saved floor", zap.String("coord", "40,1"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.True(t, strings.HasPrefix(line, "{"), "file log should be JSON: %s", line)
	assert.Contains(t, line, `"logger":"cache"`)
	assert.Contains(t, line, `"coord":"40,1"`)
}

func TestFileWithoutPath(t *testing.T) {
	_, err := build(config.LoggingConfig{File: config.LogFileConfig{Enabled: true}}, zapcore.AddSync(&bytes.Buffer{}))
	assert.Error(t, err)
}

func TestNoOutputsIsNop(t *testing.T) {
	log, err := build(config.LoggingConfig{}, zapcore.AddSync(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}
