package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stateHome points the XDG state directory at a fresh temp dir.
func stateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogger(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	for _, verbosity := range []int{0, 1, 2, 3} {
		dir := stateHome(t)

		SetupLogger(verbosity)

		assert.Equal(t, Level(verbosity), zerolog.GlobalLevel())
		_, err := os.Stat(filepath.Join(dir, "milton", LogFileName))
		assert.NoError(t, err, "verbosity %d", verbosity)
	}
}

func TestSetupLogger_WritesToLogFile(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })
	dir := stateHome(t)

	SetupLogger(1)
	logger := GetLogger("restore")
	logger.Info().Msg("Restore finished")

	data, err := os.ReadFile(filepath.Join(dir, "milton", LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"restore"`)
	assert.Contains(t, string(data), `"message":"Restore finished"`)
}

func TestLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		dir := stateHome(t)

		got, err := LogFilePath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "milton", LogFileName), got)
		assert.DirExists(t, filepath.Join(dir, "milton"))
	})

	t.Run("falls back to HOME", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("XDG_STATE_HOME", "")
		xdg.Reload()
		t.Cleanup(xdg.Reload)

		got, err := LogFilePath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "state", "milton", LogFileName), got)
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("migrate")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"migrate"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestOperation(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := Operation(logger, "obfuscate")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"obfuscate"`)
	assert.Contains(t, out, `"duration"`)
}
