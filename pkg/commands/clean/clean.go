package clean

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/milton/pkg/commands/internal"
	"github.com/arthur-debert/milton/pkg/errors"
	"github.com/arthur-debert/milton/pkg/filesystem"
	"github.com/arthur-debert/milton/pkg/logging"
	"github.com/arthur-debert/milton/pkg/paths"
	"github.com/arthur-debert/milton/pkg/types"
	"github.com/arthur-debert/milton/pkg/ui/display"
	"github.com/spf13/afero"
)

const (
	MsgCleaning = "Cleaning %s."
	MsgMissing  = "%s does not exist - quitting."
	MsgWarning  = "This will delete all %d entries in %s!"
	MsgConfirm  = "Are you sure?"
)

// CleanOptions holds options for the clean command
type CleanOptions struct {
	Path string

	internal.Runtime
}

// Clean empties a directory after confirmation, leaving the directory
// itself in place. A missing directory is reported and is not an error.
func Clean(opts CleanOptions) (*types.CleanResult, error) {
	logger := logging.GetLogger("commands.clean")
	rt := opts.Runtime.Defaults()

	path, err := paths.Normalize(opts.Path)
	if err != nil {
		return nil, err
	}
	result := &types.CleanResult{Path: path, Removed: []string{}}

	rt.Sink.Notice(display.KindInfo, fmt.Sprintf(MsgCleaning, path))
	if !filesystem.IsDir(rt.FS, path) {
		rt.Sink.Notice(display.KindWarning, fmt.Sprintf(MsgMissing, path))
		result.Missing = true
		return result, nil
	}

	entries, err := afero.ReadDir(rt.FS, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", path)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	rt.Sink.Notice(display.KindWarning, fmt.Sprintf(MsgWarning, len(names), path))
	rt.Sink.List(path, names)

	ok, err := rt.Confirmer.Confirm(MsgConfirm, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		result.Declined = true
		return result, nil
	}

	for _, name := range names {
		entry := filepath.Join(path, name)
		if err := rt.FS.RemoveAll(entry); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileRemove, "cannot remove %s", entry)
		}
		result.Removed = append(result.Removed, entry)
	}

	logger.Info().Str("path", path).Int("removed", len(result.Removed)).Msg("Directory cleaned")
	return result, nil
}
