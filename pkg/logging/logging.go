// Package logging configures the zerolog logger shared by every milton
// package. Human-readable events go to stderr; a JSON copy of every event is
// appended to milton.log below the XDG state directory, so a run that moved
// files can be audited after the terminal is gone.
package logging

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// LogFileName is the name of the persistent log file
	LogFileName = "milton.log"

	stateDir = "milton"
)

// logFile is the handle of the currently attached log file.
var logFile *os.File

// Level maps the number of -v flags to a log level.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger installs the global logger for verbosity. When the log file
// cannot be opened logging continues on stderr only.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(Level(verbosity))

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    termenv.EnvNoColor(),
	}

	path, err := LogFilePath()
	if err == nil {
		err = attachLogFile(path)
	}

	var ctx zerolog.Context
	if err == nil {
		ctx = zerolog.New(zerolog.MultiLevelWriter(console, logFile)).With()
	} else {
		ctx = zerolog.New(console).With()
	}
	ctx = ctx.Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Log file unavailable, logging to stderr only")
		return
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
}

// LogFilePath returns the log file location below the XDG state home,
// creating its directory.
func LogFilePath() (string, error) {
	return xdg.StateFile(filepath.Join(stateDir, LogFileName))
}

func attachLogFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	return nil
}

// GetLogger returns the global logger tagged with component.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Operation logs the start of operation at debug level and returns the
// function that logs its completion with the elapsed time.
func Operation(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
