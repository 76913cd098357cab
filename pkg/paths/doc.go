// Package paths provides centralized path handling for milton.
//
// It covers three things:
//
//   - Home expansion and absolute normalization of operator supplied paths
//   - XDG locations for milton's own files (configuration)
//   - The tree layout of an experiment volume
//
// # Tree layout
//
// Experiment data lives in two mirrored trees that differ only in one path
// segment: the raw data tree (default "dat") and the results tree (default
// "res"). A directory such as /lab/rig1/dat holds localhost-<id> experiment
// folders, and /lab/rig1/res holds the derived results of the same
// experiments under the same folder names.
//
// TreePath is the typed form of such a directory: the root above the tree
// segment plus the segment itself. Translating between trees replaces the
// segment and nothing else:
//
//	layout := paths.DefaultLayout()
//	tp, err := layout.Parse("/lab/rig1/dat")
//	// tp.Root == "/lab/rig1", tp.Tree == "dat"
//	tp.As(layout.Results).String() // "/lab/rig1/res"
//
// Parse rejects paths whose final segment is not a known tree, instead of
// producing a wrong sibling path.
package paths
