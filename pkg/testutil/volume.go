package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// Volume describes an experiment volume with mirrored data and results trees.
//
//	v := testutil.NewVolume("/lab/rig1").
//		Data("20200619_161734", "20200619_161734.wav").
//		Results("20200619_161734", "20200619_161734_songmanual.zarr")
//	v.Build(t, fs)
type Volume struct {
	Root       string
	HostPrefix string
	DataTree   string
	ResultTree string
	files      map[string]string
}

// NewVolume returns a volume rooted at root with the default layout.
func NewVolume(root string) *Volume {
	return &Volume{
		Root:       root,
		HostPrefix: "localhost-",
		DataTree:   "dat",
		ResultTree: "res",
		files:      make(map[string]string),
	}
}

// DataDir returns the data tree path.
func (v *Volume) DataDir() string {
	return filepath.Join(v.Root, v.DataTree)
}

// ResultsDir returns the results tree path.
func (v *Volume) ResultsDir() string {
	return filepath.Join(v.Root, v.ResultTree)
}

// Data adds files to experiment id in the data tree. File content is the
// file's own path below the volume root.
func (v *Volume) Data(id string, names ...string) *Volume {
	return v.add(v.DataTree, id, names)
}

// Results adds files to experiment id in the results tree.
func (v *Volume) Results(id string, names ...string) *Volume {
	return v.add(v.ResultTree, id, names)
}

func (v *Volume) add(tree, id string, names []string) *Volume {
	dir := filepath.Join(v.Root, tree, v.HostPrefix+id)
	v.files[dir] = ""
	for _, name := range names {
		rel := filepath.Join(tree, v.HostPrefix+id, name)
		v.files[filepath.Join(v.Root, rel)] = rel
	}
	return v
}

// Build creates the volume on fs.
func (v *Volume) Build(t *testing.T, fs afero.Fs) {
	t.Helper()
	for path, content := range v.files {
		if content == "" {
			if err := fs.MkdirAll(path, 0755); err != nil {
				t.Fatalf("mkdir %s: %v", path, err)
			}
			continue
		}
		WriteFile(t, fs, path, content)
	}
}
