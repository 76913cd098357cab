// Package commands provides the command implementations for milton.
//
// Each command is implemented in its own subdirectory:
//   - obfuscate/ - copy experiments into a quarantine under pseudonyms
//   - restore/   - copy annotated results back under their original names
//   - clean/     - empty a directory after confirmation
//   - list/      - list quarantine directories
//   - genconfig/ - print or write a configuration file
//   - internal/  - collaborators shared by the commands
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"context"

	"github.com/arthur-debert/milton/pkg/commands/clean"
	"github.com/arthur-debert/milton/pkg/commands/genconfig"
	"github.com/arthur-debert/milton/pkg/commands/internal"
	"github.com/arthur-debert/milton/pkg/commands/list"
	"github.com/arthur-debert/milton/pkg/commands/obfuscate"
	"github.com/arthur-debert/milton/pkg/commands/restore"
	"github.com/arthur-debert/milton/pkg/types"
)

// Runtime bundles the filesystem, confirmer, display sink and clock a
// command runs against.
type Runtime = internal.Runtime

// ObfuscateOptions holds options for Obfuscate.
type ObfuscateOptions = obfuscate.ObfuscateOptions

// Obfuscate copies experiments into a new quarantine directory under pseudonyms.
func Obfuscate(ctx context.Context, opts ObfuscateOptions) (*types.ObfuscateResult, error) {
	return obfuscate.Obfuscate(ctx, opts)
}

// RestoreOptions holds options for Restore.
type RestoreOptions = restore.RestoreOptions

// Restore copies quarantined results back to their original experiments.
func Restore(ctx context.Context, opts RestoreOptions) (*types.RestoreResult, error) {
	return restore.Restore(ctx, opts)
}

// CleanOptions holds options for Clean.
type CleanOptions = clean.CleanOptions

// Clean removes every entry of a directory.
func Clean(opts CleanOptions) (*types.CleanResult, error) {
	return clean.Clean(opts)
}

// ListOptions holds options for List.
type ListOptions = list.ListOptions

// List finds quarantine directories.
func List(opts ListOptions) (*types.ListResult, error) {
	return list.List(opts)
}

// GenConfigOptions holds options for GenConfig.
type GenConfigOptions = genconfig.GenConfigOptions

// GenConfig renders or writes a configuration file.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
