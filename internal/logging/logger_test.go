package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/KromaEnergia/loja-cli/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInitWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "loja.log")
	w, err := Init(config.LoggingConfig{Level: "debug", Output: "file", FilePath: path, MaxSize: 1})
	require.NoError(t, err)

	_, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	t.Cleanup(func() { _ = Close() })

	slog.Debug("product created", "id", 5)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "product created")
	assert.Contains(t, string(data), "id=5")
}

func TestInitStderr(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	w, err := Init(config.LoggingConfig{Level: "info", Output: "stderr"})
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
	assert.NoError(t, Close())
}

func TestInitBoth(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "both.log")
	_, err := Init(config.LoggingConfig{Level: "info", Output: "both", FilePath: path})
	require.NoError(t, err)

	slog.Info("customer removed", "id", 2)
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "customer removed")
}
