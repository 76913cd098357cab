package paths

import (
	"path/filepath"

	"github.com/arthur-debert/milton/pkg/errors"
)

// Layout names the two mirrored trees of an experiment volume.
type Layout struct {
	Data    string
	Results string
}

// DefaultLayout returns the dat/res layout.
func DefaultLayout() Layout {
	return Layout{Data: "dat", Results: "res"}
}

// Trees returns the tree names in migration order.
func (l Layout) Trees() []string {
	return []string{l.Data, l.Results}
}

// Has reports whether tree is one of the layout's trees.
func (l Layout) Has(tree string) bool {
	return tree != "" && (tree == l.Data || tree == l.Results)
}

// TreePath is a directory that ends in a tree segment.
type TreePath struct {
	Root string
	Tree string
}

// Parse splits path into its root and trailing tree segment. It fails with
// CONFIG_INVALID when the last segment is not one of the layout's trees.
func (l Layout) Parse(path string) (TreePath, error) {
	clean := filepath.Clean(path)
	tree := filepath.Base(clean)
	if !l.Has(tree) {
		return TreePath{}, errors.Newf(errors.ErrConfigValid,
			"%s does not end in a %q or %q directory", clean, l.Data, l.Results).
			WithDetail("path", clean)
	}
	return TreePath{Root: filepath.Dir(clean), Tree: tree}, nil
}

// As returns the same location in another tree.
func (p TreePath) As(tree string) TreePath {
	return TreePath{Root: p.Root, Tree: tree}
}

// String returns the filesystem path.
func (p TreePath) String() string {
	return filepath.Join(p.Root, p.Tree)
}
