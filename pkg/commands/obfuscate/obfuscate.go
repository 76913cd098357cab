package obfuscate

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/milton/pkg/commands/internal"
	"github.com/arthur-debert/milton/pkg/errors"
	"github.com/arthur-debert/milton/pkg/filesystem"
	"github.com/arthur-debert/milton/pkg/logging"
	"github.com/arthur-debert/milton/pkg/manifest"
	"github.com/arthur-debert/milton/pkg/mapping"
	"github.com/arthur-debert/milton/pkg/migrate"
	"github.com/arthur-debert/milton/pkg/paths"
	"github.com/arthur-debert/milton/pkg/types"
	"github.com/arthur-debert/milton/pkg/ui/display"
	"github.com/spf13/afero"
)

// ObfuscateOptions holds options for the obfuscate command
type ObfuscateOptions struct {
	// Patterns select experiment directories, e.g. "dat/localhost-20200619*".
	Patterns []string
	// Target is the root receiving the quarantine directory.
	Target     string
	HostPrefix string
	Layout     paths.Layout
	// Generator draws replacement identifiers. Nil means random.
	Generator mapping.Generator

	internal.Runtime
}

// Obfuscate copies the selected experiments of both trees into a new
// quarantine directory under pseudonymous names and records the mapping in
// its manifest.
func Obfuscate(ctx context.Context, opts ObfuscateOptions) (*types.ObfuscateResult, error) {
	logger := logging.GetLogger("commands.obfuscate")
	rt := opts.Runtime.Defaults()

	sourceTrunk, experiments, err := resolve(rt.FS, opts.Layout, opts.Patterns)
	if err != nil {
		return nil, err
	}
	if len(experiments) == 0 {
		return nil, errors.Newf(errors.ErrNotFound, "no experiment directories match %v", opts.Patterns).
			WithDetail("patterns", opts.Patterns)
	}

	target, err := paths.Normalize(opts.Target)
	if err != nil {
		return nil, err
	}
	quarantine := filepath.Join(target, paths.QuarantineName(rt.Now()))

	logger.Info().
		Str("sourceTrunk", sourceTrunk.String()).
		Str("quarantine", quarantine).
		Int("experiments", len(experiments)).
		Msg("Resolved experiments")

	rt.Sink.List(fmt.Sprintf(MsgFound, len(experiments), opts.Patterns), experiments)
	rt.Sink.Notice(display.KindInfo, fmt.Sprintf(MsgWillObfuscate, opts.Layout.Data, opts.Layout.Results, quarantine))

	result := &types.ObfuscateResult{
		SourceTrunk: sourceTrunk.String(),
		Experiments: experiments,
	}

	ok, err := rt.Confirmer.Confirm(MsgContinue, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Info().Msg("Obfuscation declined")
		result.Declined = true
		return result, nil
	}

	mapper := mapping.NewMapper(opts.HostPrefix, opts.Generator)
	m, err := mapper.Build(experiments)
	if err != nil {
		return nil, err
	}

	exists, err := filesystem.Exists(rt.FS, quarantine)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", quarantine)
	}
	if exists {
		return nil, errors.Newf(errors.ErrInvalidInput, "quarantine directory %s already exists", quarantine).
			WithDetail("quarantine", quarantine)
	}
	if err := rt.FS.MkdirAll(quarantine, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", quarantine)
	}

	store := manifest.NewStore(rt.FS)
	manifestPath, err := store.Save(&manifest.Manifest{
		SourceTrunk:    sourceTrunk.String(),
		ObfuscateTrunk: quarantine,
		Mapping:        m,
	}, quarantine)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("manifest", manifestPath).Msg("Manifest saved")

	migrator := migrate.New(rt.FS, rt.Sink)
	for _, tree := range opts.Layout.Trees() {
		report, err := migrator.Migrate(ctx, migrate.Options{
			SourceRoot: sourceTrunk.As(tree).String(),
			TargetRoot: filepath.Join(quarantine, tree),
			Mapping:    m,
			HostPrefix: opts.HostPrefix,
			KeepSource: true,
			Overwrite:  false,
			Pattern:    migrate.DefaultPattern,
			Mode:       migrate.ModeObfuscate,
		})
		if report != nil {
			result.Reports = append(result.Reports, report)
		}
		if err != nil {
			return result, err
		}
	}

	result.Quarantine = quarantine
	logger.Info().Str("quarantine", quarantine).Msg("Obfuscation finished")
	return result, nil
}

// resolve expands the patterns into experiment directory names and the data
// tree they live in. Patterns rooted in the results tree select the same
// experiments, so their parent is normalized to the data tree.
func resolve(fs afero.Fs, layout paths.Layout, patterns []string) (paths.TreePath, []string, error) {
	logger := logging.GetLogger("commands.obfuscate")

	parents := make(map[string]struct{})
	var parentList []string
	seen := make(map[string]struct{})
	var experiments []string

	for _, pattern := range patterns {
		abs, err := paths.Normalize(pattern)
		if err != nil {
			return paths.TreePath{}, nil, err
		}

		parent := filepath.Dir(abs)
		if filepath.Base(parent) == layout.Results {
			parent = filepath.Join(filepath.Dir(parent), layout.Data)
		}
		if _, ok := parents[parent]; !ok {
			parents[parent] = struct{}{}
			parentList = append(parentList, parent)
		}

		matches, err := filesystem.GlobPath(fs, abs)
		if err != nil {
			return paths.TreePath{}, nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid pattern %q", pattern)
		}
		for _, match := range matches {
			if !filesystem.IsDir(fs, match) {
				continue
			}
			name := filepath.Base(match)
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			experiments = append(experiments, name)
		}
		logger.Debug().Str("pattern", pattern).Int("matches", len(matches)).Msg("Pattern resolved")
	}

	if len(parentList) == 0 {
		return paths.TreePath{}, nil, errors.New(errors.ErrInvalidInput, "at least one source pattern is required")
	}
	if len(parentList) > 1 {
		sort.Strings(parentList)
		return paths.TreePath{}, nil, errors.Newf(errors.ErrConfigValid,
			"sources need to have the same parent directory, got %d parents: %v", len(parentList), parentList).
			WithDetail("parents", parentList)
	}

	trunk, err := layout.Parse(parentList[0])
	if err != nil {
		return paths.TreePath{}, nil, err
	}
	sort.Strings(experiments)
	return trunk, experiments, nil
}
