// Package manifest persists the record of one obfuscation run.
//
// A manifest lives inside the quarantine directory it describes and is named
// after it: /blind/20200621_110046/20200621_110046.yaml. It holds exactly the
// three fields needed to undo the run:
//
//	source_trunk: /lab/rig1/dat
//	obfuscate_trunk: /blind/20200621_110046
//	mapping:
//	  "20200619_161734": "48213377_020934"
//
// Manifests are written once, before any file is copied, and are only read
// afterwards. Writes are atomic.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/milton/pkg/errors"
	"github.com/arthur-debert/milton/pkg/filesystem"
	"github.com/arthur-debert/milton/pkg/logging"
	"github.com/arthur-debert/milton/pkg/mapping"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Extension is the file extension of manifest files.
const Extension = ".yaml"

// Manifest is the persisted record of an obfuscation run.
type Manifest struct {
	SourceTrunk    string           `yaml:"source_trunk"`
	ObfuscateTrunk string           `yaml:"obfuscate_trunk"`
	Mapping        *mapping.Mapping `yaml:"mapping"`
}

// PathFor returns the manifest path for a quarantine directory.
func PathFor(dir string) string {
	clean := filepath.Clean(dir)
	return filepath.Join(clean, filepath.Base(clean)+Extension)
}

// Store reads and writes manifests on a filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore returns a store backed by fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Save writes m into dir, creating dir if needed, and returns the file path.
func (s *Store) Save(m *Manifest, dir string) (string, error) {
	logger := logging.GetLogger("manifest")
	path := PathFor(dir)

	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(path))
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrManifestWrite, "cannot encode manifest")
	}

	if err := filesystem.WriteFileAtomic(s.fs, path, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrManifestWrite, "cannot write %s", path)
	}

	logger.Info().
		Str("path", path).
		Int("experiments", m.Mapping.Len()).
		Msg("Manifest saved")
	return path, nil
}

// Load reads the manifest of the quarantine directory dir.
func (s *Store) Load(dir string) (*Manifest, error) {
	logger := logging.GetLogger("manifest")
	path := PathFor(dir)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "no manifest at %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "malformed manifest %s", path)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "invalid manifest %s", path)
	}

	logger.Debug().
		Str("path", path).
		Int("experiments", m.Mapping.Len()).
		Msg("Manifest loaded")
	return &m, nil
}

// Validate checks that all fields are present.
func (m *Manifest) Validate() error {
	switch {
	case m.SourceTrunk == "":
		return errors.New(errors.ErrManifestParse, "missing source_trunk")
	case m.ObfuscateTrunk == "":
		return errors.New(errors.ErrManifestParse, "missing obfuscate_trunk")
	case m.Mapping == nil:
		return errors.New(errors.ErrManifestParse, "missing mapping")
	}
	return nil
}
