package migrate

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/milton/pkg/errors"
	"github.com/arthur-debert/milton/pkg/filesystem"
	"github.com/arthur-debert/milton/pkg/logging"
	"github.com/arthur-debert/milton/pkg/mapping"
	"github.com/arthur-debert/milton/pkg/ui/display"
	"github.com/spf13/afero"
)

// Mode selects the wording of diagnostics.
type Mode string

const (
	// ModeObfuscate migrates originals into a quarantine tree
	ModeObfuscate Mode = "obfuscate"
	// ModeRestore migrates results back to the original tree
	ModeRestore Mode = "restore"
)

// DefaultPattern matches every file.
const DefaultPattern = "*"

// Options configures one migration.
type Options struct {
	SourceRoot string
	TargetRoot string
	Mapping    *mapping.Mapping
	HostPrefix string
	KeepSource bool
	Overwrite  bool
	Pattern    string
	Mode       Mode
}

// Action is what happened to one matched file.
type Action string

const (
	ActionCopied      Action = "copied"
	ActionMoved       Action = "moved"
	ActionOverwritten Action = "overwritten"
	ActionSkipped     Action = "skipped"
)

// FileResult records one matched file.
type FileResult struct {
	Source      string
	Destination string
	Action      Action
}

// Report summarizes a migration.
type Report struct {
	Files []FileResult
	// NoMatch lists source directories without matching files.
	NoMatch []string
}

// Count returns the number of files that ended with action.
func (r *Report) Count(action Action) int {
	n := 0
	for _, f := range r.Files {
		if f.Action == action {
			n++
		}
	}
	return n
}

// Transferred returns the number of files written to the target.
func (r *Report) Transferred() int {
	return len(r.Files) - r.Count(ActionSkipped)
}

// Migrator performs migrations on a filesystem.
type Migrator struct {
	fs   afero.Fs
	sink display.Sink
}

// New returns a migrator. A nil sink discards diagnostics.
func New(fs afero.Fs, sink display.Sink) *Migrator {
	if sink == nil {
		sink = display.Discard{}
	}
	return &Migrator{fs: fs, sink: sink}
}

// DestinationName rewrites every occurrence of original in name. An empty
// original leaves name unchanged.
func DestinationName(name, original, replacement string) string {
	if original == "" {
		return name
	}
	return strings.ReplaceAll(name, original, replacement)
}

// Migrate runs the migration described by opts. ctx is checked between
// pairs.
func (m *Migrator) Migrate(ctx context.Context, opts Options) (*Report, error) {
	logger := logging.GetLogger("migrate")
	done := logging.Operation(logger, "migrate")
	defer done()

	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	report := &Report{}
	pairs := opts.Mapping.Pairs()

	m.sink.Start(fmt.Sprintf("%s -> %s", opts.SourceRoot, opts.TargetRoot), len(pairs))
	defer m.sink.Finish()

	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, errors.ErrCancelled, "migration interrupted")
		}

		if err := m.migratePair(opts, pattern, pair, report); err != nil {
			return report, err
		}
		m.sink.Advance(opts.HostPrefix + pair.Original)
	}

	logger.Info().
		Str("source", opts.SourceRoot).
		Str("target", opts.TargetRoot).
		Str("mode", string(opts.Mode)).
		Int("pairs", len(pairs)).
		Int("transferred", report.Transferred()).
		Int("skipped", report.Count(ActionSkipped)).
		Int("noMatch", len(report.NoMatch)).
		Msg("Migration finished")
	return report, nil
}

func (m *Migrator) migratePair(opts Options, pattern string, pair mapping.Pair, report *Report) error {
	logger := logging.GetLogger("migrate")
	copyFrom := filepath.Join(opts.SourceRoot, opts.HostPrefix+pair.Original)
	copyTo := filepath.Join(opts.TargetRoot, opts.HostPrefix+pair.Replacement)

	if err := m.fs.MkdirAll(copyTo, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", copyTo)
	}

	names, err := filesystem.Glob(m.fs, copyFrom, pattern)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", copyFrom)
	}
	if len(names) == 0 {
		searchPattern := filepath.Join(copyFrom, pattern)
		m.sink.Notice(display.KindNoMatch, fmt.Sprintf(MsgNoMatch, searchPattern))
		report.NoMatch = append(report.NoMatch, copyFrom)
		return nil
	}

	for _, name := range names {
		src := filepath.Join(copyFrom, name)
		dst := filepath.Join(copyTo, DestinationName(name, pair.Original, pair.Replacement))

		action := ActionCopied
		if !opts.KeepSource {
			action = ActionMoved
		}

		exists, err := filesystem.Exists(m.fs, dst)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", dst)
		}
		switch {
		case exists && !opts.Overwrite:
			m.sink.Notice(display.KindSkipped, fmt.Sprintf(MsgSkipping, dst))
			report.Files = append(report.Files, FileResult{Source: src, Destination: dst, Action: ActionSkipped})
			continue
		case exists:
			m.sink.Notice(display.KindOverwriting, fmt.Sprintf(MsgOverwriting, dst))
			action = ActionOverwritten
		case opts.Mode == ModeRestore:
			m.sink.Notice(display.KindRestoring, fmt.Sprintf(MsgRestoring, dst))
		}

		if opts.KeepSource {
			if err := filesystem.Copy(m.fs, src, dst); err != nil {
				return errors.Wrapf(err, errors.ErrFileCopy, "cannot copy %s to %s", src, dst)
			}
		} else {
			if err := filesystem.Move(m.fs, src, dst); err != nil {
				return errors.Wrapf(err, errors.ErrFileMove, "cannot move %s to %s", src, dst)
			}
		}

		logger.Debug().
			Str("from", src).
			Str("to", dst).
			Str("action", string(action)).
			Msg("File migrated")
		report.Files = append(report.Files, FileResult{Source: src, Destination: dst, Action: action})
	}
	return nil
}
