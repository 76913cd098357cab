package genconfig

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/milton/pkg/config"
	"github.com/arthur-debert/milton/pkg/filesystem"
	"github.com/arthur-debert/milton/pkg/logging"
	"github.com/arthur-debert/milton/pkg/types"
	"github.com/spf13/afero"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Effective renders the loaded configuration instead of the commented
	// defaults.
	Effective *config.Config
	// Write stores the content at Path instead of only returning it.
	Write bool
	Path  string
	FS    afero.Fs
}

// GenConfig outputs or writes a configuration file
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.GenerateConfigContent()
	if opts.Effective != nil {
		rendered, err := config.Render(opts.Effective)
		if err != nil {
			return nil, fmt.Errorf("failed to render configuration: %w", err)
		}
		content = rendered
	}

	result := &types.GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	path := opts.Path
	if path == "" {
		path = config.DefaultPath()
	}

	exists, err := filesystem.Exists(fs, path)
	if err != nil {
		return result, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		logger.Warn().Str("path", path).Msg("Config file already exists, skipping")
		return result, nil
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return result, fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := filesystem.WriteFileAtomic(fs, path, []byte(content), 0644); err != nil {
		return result, fmt.Errorf("failed to write config to %s: %w", path, err)
	}

	logger.Info().Str("path", path).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, path)
	return result, nil
}
