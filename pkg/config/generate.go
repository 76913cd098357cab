package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// GetDefaultsContent returns the embedded defaults file.
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// GenerateConfigContent generates a user configuration file with every
// value commented out, so the file documents the defaults without pinning them.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// Render encodes cfg as TOML.
func Render(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// commentOutConfigValues comments out every assignment line, keeping
// comments, blank lines and section headers.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
