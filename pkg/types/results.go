package types

import "github.com/arthur-debert/milton/pkg/migrate"

// ObfuscateResult holds the result of the 'obfuscate' command.
type ObfuscateResult struct {
	// Quarantine is the created quarantine directory, empty when the
	// operator declined.
	Quarantine  string            `json:"quarantine"`
	SourceTrunk string            `json:"sourceTrunk"`
	Experiments []string          `json:"experiments"`
	Declined    bool              `json:"declined"`
	Reports     []*migrate.Report `json:"reports,omitempty"`
}

// RestoreResult holds the result of the 'restore' command.
type RestoreResult struct {
	Quarantine string          `json:"quarantine"`
	RestoreTo  string          `json:"restoreTo"`
	Declined   bool            `json:"declined"`
	Deleted    bool            `json:"deleted"`
	Report     *migrate.Report `json:"report,omitempty"`
}

// CleanResult holds the result of the 'clean' command.
type CleanResult struct {
	Path     string   `json:"path"`
	Missing  bool     `json:"missing"`
	Declined bool     `json:"declined"`
	Removed  []string `json:"removed"`
}

// ListResult holds the result of the 'list' command.
type ListResult struct {
	Target      string           `json:"target"`
	Quarantines []QuarantineInfo `json:"quarantines"`
}

// QuarantineInfo summarizes a quarantine directory.
type QuarantineInfo struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SourceTrunk string `json:"sourceTrunk"`
	Experiments int    `json:"experiments"`
	// Error is set when the manifest cannot be read.
	Error string `json:"error,omitempty"`
}

// GenConfigResult holds the result of the 'genconfig' command.
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
}
