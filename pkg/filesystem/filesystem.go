package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// NewOS returns the filesystem backed by the operating system.
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// Exists reports whether path exists. Errors other than not-exist are returned.
func Exists(fs afero.Fs, path string) (bool, error) {
	return afero.Exists(fs, path)
}

// IsDir reports whether path exists and is a directory.
func IsDir(fs afero.Fs, path string) bool {
	ok, err := afero.IsDir(fs, path)
	return err == nil && ok
}

// Glob returns the names of the entries in dir matching the shell pattern,
// sorted. Only the final path component is matched, so metacharacters in dir
// itself are taken literally. Hidden entries only match patterns that start
// with a dot. A missing dir yields no matches.
func Glob(fs afero.Fs, dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var matches []string
	for _, entry := range entries {
		name := entry.Name()
		if !visible(name, pattern) {
			continue
		}
		if ok, _ := filepath.Match(pattern, name); ok {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// GlobPath expands a full path pattern, sorted. Metacharacters may appear in
// any component; the final component follows the hidden-entry rule of Glob.
func GlobPath(fs afero.Fs, pattern string) ([]string, error) {
	found, err := afero.Glob(fs, pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	base := filepath.Base(pattern)
	matches := found[:0]
	for _, path := range found {
		if visible(filepath.Base(path), base) {
			matches = append(matches, path)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// visible reports whether name may match pattern: dot entries only match
// patterns that start with a dot.
func visible(name, pattern string) bool {
	return !strings.HasPrefix(name, ".") || strings.HasPrefix(pattern, ".")
}

// Copy duplicates src at dst. Files are copied with their permission bits;
// directories are copied recursively. An existing dst is replaced.
func Copy(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if err := fs.RemoveAll(dst); err != nil {
			return err
		}
		return copyTree(fs, src, dst)
	}
	return copyFile(fs, src, dst, info.Mode().Perm())
}

// Move relocates src to dst. A fresh dst is renamed into place; an existing
// dst, or a rename that fails (for instance across devices), goes through
// copy and remove. src is only removed once the copy has succeeded.
func Move(fs afero.Fs, src, dst string) error {
	exists, err := afero.Exists(fs, dst)
	if err != nil {
		return err
	}
	if !exists {
		if err := fs.Rename(src, dst); err == nil {
			return nil
		}
	}
	if err := Copy(fs, src, dst); err != nil {
		return err
	}
	return fs.RemoveAll(src)
}

// WriteFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers see either the old content or the complete new one.
func WriteFileAtomic(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return err
	}
	if err := fs.Chmod(tmpName, perm); err != nil {
		_ = fs.Remove(tmpName)
		return err
	}
	if err := fs.Rename(tmpName, path); err != nil {
		_ = fs.Remove(tmpName)
		return err
	}
	return nil
}

func copyFile(fs afero.Fs, src, dst string, perm os.FileMode) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func copyTree(fs afero.Fs, src, dst string) error {
	return afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return fs.MkdirAll(target, info.Mode().Perm()|0700)
		}
		return copyFile(fs, path, target, info.Mode().Perm())
	})
}
