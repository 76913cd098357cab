package paths

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/milton/pkg/errors"
)

const (
	// AppDirName is the directory name used below the XDG base directories
	AppDirName = "milton"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// QuarantineTimeFormat names quarantine directories (YYYYMMDD_HHMMSS)
	QuarantineTimeFormat = "20060102_150405"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// Normalize expands the home directory and returns a clean absolute path.
func Normalize(path string) (string, error) {
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return filepath.Clean(abs), nil
}

// ConfigFilePath returns the location of the user configuration file.
func ConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// QuarantineName returns the directory name for a run started at t.
func QuarantineName(t time.Time) string {
	return t.Format(QuarantineTimeFormat)
}

// IsQuarantineName reports whether name looks like a quarantine directory name.
func IsQuarantineName(name string) bool {
	_, err := time.Parse(QuarantineTimeFormat, name)
	return err == nil
}
