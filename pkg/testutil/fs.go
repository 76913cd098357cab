package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() afero.Fs {
	return afero.NewMemMapFs()
}

// WriteFile writes content at path, creating parent directories.
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

// ReadFile returns the content at path.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

// AssertFileContent checks that path exists with content.
func AssertFileContent(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if assert.NoError(t, err, "expected file %s", path) {
		assert.Equal(t, content, string(data), "content of %s", path)
	}
}

// AssertNotExists checks that path does not exist.
func AssertNotExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, exists, "expected %s to be absent", path)
}

// ListDir returns the sorted entry names of dir.
func ListDir(t *testing.T, fs afero.Fs, dir string) []string {
	t.Helper()
	entries, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Snapshot returns every file below root with its content.
func Snapshot(t *testing.T, fs afero.Fs, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			out[path+"/"] = ""
			return nil
		}
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return err
		}
		out[path] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}

// FailingFS wraps a filesystem and fails writes to paths containing any of
// the configured substrings. With FailStat, Stat fails on them too.
type FailingFS struct {
	afero.Fs
	failOn   []string
	err      error
	failStat bool
}

// NewFailingFS returns a wrapper failing with err on matching paths.
func NewFailingFS(base afero.Fs, err error, failOn ...string) *FailingFS {
	return &FailingFS{Fs: base, failOn: failOn, err: err}
}

// FailStat makes Stat fail on matching paths as well.
func (f *FailingFS) FailStat() *FailingFS {
	f.failStat = true
	return f
}

func (f *FailingFS) Stat(name string) (os.FileInfo, error) {
	if f.failStat && f.match(name) {
		return nil, &os.PathError{Op: "stat", Path: name, Err: f.err}
	}
	return f.Fs.Stat(name)
}

func (f *FailingFS) match(name string) bool {
	for _, s := range f.failOn {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

func (f *FailingFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE) != 0 && f.match(name) {
		return nil, &os.PathError{Op: "open", Path: name, Err: f.err}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *FailingFS) Create(name string) (afero.File, error) {
	if f.match(name) {
		return nil, &os.PathError{Op: "create", Path: name, Err: f.err}
	}
	return f.Fs.Create(name)
}

func (f *FailingFS) MkdirAll(path string, perm os.FileMode) error {
	if f.match(path) {
		return &os.PathError{Op: "mkdir", Path: path, Err: f.err}
	}
	return f.Fs.MkdirAll(path, perm)
}

func (f *FailingFS) Rename(oldname, newname string) error {
	if f.match(newname) {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: f.err}
	}
	return f.Fs.Rename(oldname, newname)
}
