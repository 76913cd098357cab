package restore

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/milton/pkg/commands/internal"
	"github.com/arthur-debert/milton/pkg/errors"
	"github.com/arthur-debert/milton/pkg/logging"
	"github.com/arthur-debert/milton/pkg/manifest"
	"github.com/arthur-debert/milton/pkg/migrate"
	"github.com/arthur-debert/milton/pkg/paths"
	"github.com/arthur-debert/milton/pkg/types"
	"github.com/arthur-debert/milton/pkg/ui/display"
)

// DefaultMask selects manual annotation stores.
const DefaultMask = "*songmanual.zarr"

// RestoreOptions holds options for the restore command
type RestoreOptions struct {
	// Quarantine is the directory created by obfuscate.
	Quarantine string
	Mask       string
	Overwrite  bool
	// Delete removes the whole quarantine directory after a second
	// confirmation.
	Delete     bool
	HostPrefix string
	Layout     paths.Layout

	internal.Runtime
}

// Restore copies the quarantined results matching Mask back to the results
// tree the experiments came from, under their original names. The data tree
// is never touched.
func Restore(ctx context.Context, opts RestoreOptions) (*types.RestoreResult, error) {
	logger := logging.GetLogger("commands.restore")
	rt := opts.Runtime.Defaults()

	quarantine, err := paths.Normalize(opts.Quarantine)
	if err != nil {
		return nil, err
	}

	m, err := manifest.NewStore(rt.FS).Load(quarantine)
	if err != nil {
		return nil, err
	}

	inverse, err := m.Mapping.Invert()
	if err != nil {
		return nil, err
	}

	trunk, err := opts.Layout.Parse(m.SourceTrunk)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "manifest %s has an invalid source_trunk", manifest.PathFor(quarantine))
	}
	restoreTo := trunk.As(opts.Layout.Results).String()
	source := filepath.Join(quarantine, opts.Layout.Results)

	if filepath.Clean(m.ObfuscateTrunk) != quarantine {
		logger.Warn().
			Str("recorded", m.ObfuscateTrunk).
			Str("actual", quarantine).
			Msg("Quarantine directory was moved, restoring from its current location")
	}

	mask := opts.Mask
	if mask == "" {
		mask = DefaultMask
	}

	originals := make([]string, 0, m.Mapping.Len())
	for _, original := range m.Mapping.Originals() {
		originals = append(originals, opts.HostPrefix+original)
	}
	rt.Sink.Notice(display.KindInfo, fmt.Sprintf(MsgFound, m.Mapping.Len(), source))
	rt.Sink.List(fmt.Sprintf(MsgWillRestore, mask, restoreTo), originals)
	if opts.Overwrite {
		rt.Sink.Notice(display.KindWarning, MsgOverwrite)
	} else {
		rt.Sink.Notice(display.KindInfo, MsgNoOverwrite)
	}

	result := &types.RestoreResult{
		Quarantine: quarantine,
		RestoreTo:  restoreTo,
	}

	ok, err := rt.Confirmer.Confirm(MsgContinue, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Info().Msg("Restore declined")
		result.Declined = true
		return result, nil
	}

	report, err := migrate.New(rt.FS, rt.Sink).Migrate(ctx, migrate.Options{
		SourceRoot: source,
		TargetRoot: restoreTo,
		Mapping:    inverse,
		HostPrefix: opts.HostPrefix,
		KeepSource: true,
		Overwrite:  opts.Overwrite,
		Pattern:    mask,
		Mode:       migrate.ModeRestore,
	})
	result.Report = report
	if err != nil {
		return result, err
	}

	if !opts.Delete {
		return result, nil
	}

	ok, err = rt.Confirmer.Confirm(fmt.Sprintf(MsgConfirmDelete, quarantine), true)
	if err != nil {
		return result, err
	}
	if !ok {
		logger.Info().Str("quarantine", quarantine).Msg("Quarantine kept")
		return result, nil
	}

	if err := rt.FS.RemoveAll(quarantine); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileRemove, "cannot delete %s", quarantine)
	}
	result.Deleted = true
	logger.Info().Str("quarantine", quarantine).Msg("Quarantine deleted")
	return result, nil
}
