package util

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureGlobalLogger points the global logger at a buffer for the test.
// Not compatible with t.Parallel().
func captureGlobalLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Logger
	prevLvl := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLvl)
	})
	return &buf
}

func TestInitializeLogger_SetsGlobalLevel(t *testing.T) {
	prevLvl := zerolog.GlobalLevel()
	prev := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLvl)
		log.Logger = prev
	})

	InitializeLogger(ErrorLevel)
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())

	InitializeLogger(DebugLevel)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	// Unknown levels fall back to info
	InitializeLogger(99)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestGetLogger_TagsComponent(t *testing.T) {
	buf := captureGlobalLogger(t)

	logger := GetLogger("staging")
	logger.Info().Msg("node staged")

	out := buf.String()
	assert.Contains(t, out, `"component":"staging"`)
	assert.Contains(t, out, "node staged")
}

// A log/slog-speaking caller routes through the bridge into zerolog
func TestNewSlogHandler_RoutesToZerolog(t *testing.T) {
	buf := captureGlobalLogger(t)

	logger := slog.New(NewSlogHandler("bridge", slog.LevelInfo))
	logger.Info("via slog", "path", "a/b.txt")

	out := buf.String()
	assert.Contains(t, out, `"component":"bridge"`)
	assert.Contains(t, out, "via slog")
	assert.Contains(t, out, "a/b.txt")
}

func TestNewSlogHandler_FiltersBelowLevel(t *testing.T) {
	buf := captureGlobalLogger(t)

	logger := slog.New(NewSlogHandler("bridge", slog.LevelWarn))
	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

// A stdlog consumer routes through the same bridge
func TestNewLogLogger_RoutesToZerolog(t *testing.T) {
	buf := captureGlobalLogger(t)

	stdLogger := NewLogLogger("legacy")
	require.NotNil(t, stdLogger)
	stdLogger.Print("via stdlog")

	out := buf.String()
	assert.Contains(t, out, `"component":"legacy"`)
	assert.Contains(t, out, "via stdlog")
}
