package filesystem

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/arthur-debert/milton/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestGlob(t *testing.T) {
	fs := NewMemory()
	writeFile(t, fs, "/exp/a_songmanual.zarr", "1")
	writeFile(t, fs, "/exp/b_songmanual.zarr", "2")
	writeFile(t, fs, "/exp/b_tuna.h5", "3")
	writeFile(t, fs, "/exp/.hidden_songmanual.zarr", "4")

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"star", "*", []string{"a_songmanual.zarr", "b_songmanual.zarr", "b_tuna.h5"}},
		{"suffix", "*songmanual.zarr", []string{"a_songmanual.zarr", "b_songmanual.zarr"}},
		{"question mark", "?_tuna.h5", []string{"b_tuna.h5"}},
		{"character class", "[a]*", []string{"a_songmanual.zarr"}},
		{"explicit hidden", ".*", []string{".hidden_songmanual.zarr"}},
		{"no match", "*.wav", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Glob(fs, "/exp", tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGlob_MissingDirectory(t *testing.T) {
	got, err := Glob(NewMemory(), "/nowhere", "*")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGlob_InvalidPattern(t *testing.T) {
	_, err := Glob(NewMemory(), "/", "[")
	assert.Error(t, err)
}

func TestGlobPath(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/lab/dat/localhost-20200619_161734", 0755))
	require.NoError(t, fs.MkdirAll("/lab/dat/localhost-20200619_190710", 0755))
	require.NoError(t, fs.MkdirAll("/lab/dat/.Trash-1000", 0755))

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"star skips hidden", "/lab/dat/*", []string{"/lab/dat/localhost-20200619_161734", "/lab/dat/localhost-20200619_190710"}},
		{"explicit hidden", "/lab/dat/.*", []string{"/lab/dat/.Trash-1000"}},
		{"literal path", "/lab/dat/localhost-20200619_161734", []string{"/lab/dat/localhost-20200619_161734"}},
		{"no match", "/lab/res/*", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GlobPath(fs, tt.pattern)
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCopy_File(t *testing.T) {
	fs := NewMemory()
	writeFile(t, fs, "/src/file.txt", "hello")
	require.NoError(t, fs.MkdirAll("/dst", 0755))

	require.NoError(t, Copy(fs, "/src/file.txt", "/dst/file.txt"))

	assert.Equal(t, "hello", readFile(t, fs, "/dst/file.txt"))
	assert.Equal(t, "hello", readFile(t, fs, "/src/file.txt"))
}

func TestCopy_ReplacesExisting(t *testing.T) {
	fs := NewMemory()
	writeFile(t, fs, "/src/file.txt", "new")
	writeFile(t, fs, "/dst/file.txt", "old content that is longer")

	require.NoError(t, Copy(fs, "/src/file.txt", "/dst/file.txt"))
	assert.Equal(t, "new", readFile(t, fs, "/dst/file.txt"))
}

func TestCopy_Directory(t *testing.T) {
	fs := NewMemory()
	writeFile(t, fs, "/src/store.zarr/.zarray", "meta")
	writeFile(t, fs, "/src/store.zarr/0/0", "chunk")
	require.NoError(t, fs.MkdirAll("/dst", 0755))

	require.NoError(t, Copy(fs, "/src/store.zarr", "/dst/store.zarr"))

	assert.Equal(t, "meta", readFile(t, fs, "/dst/store.zarr/.zarray"))
	assert.Equal(t, "chunk", readFile(t, fs, "/dst/store.zarr/0/0"))
}

func TestMove(t *testing.T) {
	fs := NewMemory()
	writeFile(t, fs, "/src/file.txt", "payload")
	writeFile(t, fs, "/dst/file.txt", "stale")

	require.NoError(t, Move(fs, "/src/file.txt", "/dst/file.txt"))

	assert.Equal(t, "payload", readFile(t, fs, "/dst/file.txt"))
	exists, err := Exists(fs, "/src/file.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMove_FailedCopyKeepsBothSides(t *testing.T) {
	base := NewMemory()
	writeFile(t, base, "/src/file.txt", "payload")
	writeFile(t, base, "/dst/file.txt", "stale")
	fs := testutil.NewFailingFS(base, syscall.ENOSPC, "/dst/file.txt")

	require.Error(t, Move(fs, "/src/file.txt", "/dst/file.txt"))

	assert.Equal(t, "payload", readFile(t, base, "/src/file.txt"))
	assert.Equal(t, "stale", readFile(t, base, "/dst/file.txt"))
}

func TestMove_StatError(t *testing.T) {
	base := NewMemory()
	writeFile(t, base, "/src/file.txt", "payload")
	fs := testutil.NewFailingFS(base, syscall.EACCES, "/dst").FailStat()

	err := Move(fs, "/src/file.txt", "/dst/file.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.EACCES)
	assert.Equal(t, "payload", readFile(t, base, "/src/file.txt"))
}

func TestWriteFileAtomic(t *testing.T) {
	fs := NewMemory()

	require.NoError(t, WriteFileAtomic(fs, "/q/20200621_110046/20200621_110046.yaml", []byte("a: 1\n"), 0644))
	assert.Equal(t, "a: 1\n", readFile(t, fs, "/q/20200621_110046/20200621_110046.yaml"))

	entries, err := afero.ReadDir(fs, "/q/20200621_110046")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestOnDisk(t *testing.T) {
	fs := NewOS()
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("disk"), 0600))

	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, Copy(fs, src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.True(t, IsDir(fs, dir))
	assert.False(t, IsDir(fs, dst))
}
