package list

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/milton/pkg/errors"
	"github.com/arthur-debert/milton/pkg/filesystem"
	"github.com/arthur-debert/milton/pkg/logging"
	"github.com/arthur-debert/milton/pkg/manifest"
	"github.com/arthur-debert/milton/pkg/paths"
	"github.com/arthur-debert/milton/pkg/types"
	"github.com/spf13/afero"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	// Target is the root holding quarantine directories.
	Target string
	FS     afero.Fs
}

// List finds the quarantine directories below Target. Directories whose
// name is not a timestamp are ignored; an unreadable manifest is reported
// on the entry instead of failing the listing.
func List(opts ListOptions) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "List").Msg("Executing command")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	target, err := paths.Normalize(opts.Target)
	if err != nil {
		return nil, err
	}
	result := &types.ListResult{Target: target, Quarantines: []types.QuarantineInfo{}}

	entries, err := afero.ReadDir(fs, target)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", target)
	}

	store := manifest.NewStore(fs)
	for _, entry := range entries {
		if !entry.IsDir() || !paths.IsQuarantineName(entry.Name()) {
			continue
		}
		dir := filepath.Join(target, entry.Name())
		info := types.QuarantineInfo{Name: entry.Name(), Path: dir}

		m, err := store.Load(dir)
		if err != nil {
			info.Error = err.Error()
		} else {
			info.SourceTrunk = m.SourceTrunk
			info.Experiments = m.Mapping.Len()
		}
		result.Quarantines = append(result.Quarantines, info)
	}

	sort.Slice(result.Quarantines, func(i, j int) bool {
		return result.Quarantines[i].Name < result.Quarantines[j].Name
	})

	log.Info().Str("command", "List").Int("quarantineCount", len(result.Quarantines)).Msg("Command finished")
	return result, nil
}
