// Package filesystem provides the filesystem plumbing milton runs on.
//
// Every component receives an afero.Fs so the same code runs against the
// real disk (NewOS) and against an in-memory tree in tests (NewMemory).
// The helpers here cover what the migration and manifest code needs on top
// of afero: shell-glob listing of a single directory, file and directory
// copies, moves that survive cross-device renames, and atomic writes.
package filesystem
