package milton

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Blind experiments for annotation and restore the results"
	MsgObfuscateShort  = "Copy experiments into a quarantine under random names"
	MsgRestoreShort    = "Copy annotated results back to the original experiments"
	MsgCleanShort      = "Delete everything inside a directory"
	MsgCleanLong       = "Clean lists the entries of PATH and, after confirmation, removes all of them. PATH itself is kept."
	MsgListShort       = "List quarantine directories"
	MsgListLong        = "List shows the quarantine directories found in the target folder with the number of experiments they hold."
	MsgGenConfigShort  = "Print or write a configuration file"
	MsgGenConfigLong   = "Print a commented configuration template, or with --effective the configuration in use. With --write the content is stored in the configuration file location unless a file already exists there."
	MsgGuideShort      = "Show the user guide"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgAborted        = "Aborted, nothing was changed."
	MsgQuarantine     = "Obfuscated %d experiments into %s"
	MsgRestoreSummary = "Restored %d files to %s (%d skipped, %d without matches)."
	MsgDeleted        = "Deleted %s."
	MsgCleaned        = "Removed %d entries from %s."
	MsgNoQuarantines  = "No quarantine directories in %s."
	MsgConfigWritten  = "Wrote %s\n"
	MsgConfigKept     = "%s already exists, not overwritten.\n"
	MsgVersionFormat  = "milton version %s\n"
	MsgVersionCommit  = "Commit: %s\n"
	MsgVersionBuilt   = "Built:  %s\n"
	MsgNoCommand      = "no command specified"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagYes       = "Answer yes to every confirmation"
	MsgFlagNoColor   = "Disable colored output"
	MsgFlagConfig    = "Configuration file (default $XDG_CONFIG_HOME/milton/config.toml)"
	MsgFlagTarget    = "Root folder for quarantine directories"
	MsgFlagMask      = "Pattern of the files to restore"
	MsgFlagOverwrite = "Overwrite existing files"
	MsgFlagDelete    = "Delete the whole quarantine directory after restoring"
	MsgFlagWrite     = "Write the configuration file instead of printing it"
	MsgFlagEffective = "Print the configuration in use instead of the template"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/obfuscate-long.txt
	msgObfuscateLongRaw string
	MsgObfuscateLong    = strings.TrimSpace(msgObfuscateLongRaw)

	//go:embed msgs/obfuscate-example.txt
	msgObfuscateExampleRaw string
	MsgObfuscateExample    = strings.TrimRight(msgObfuscateExampleRaw, "\n")

	//go:embed msgs/restore-long.txt
	msgRestoreLongRaw string
	MsgRestoreLong    = strings.TrimSpace(msgRestoreLongRaw)

	//go:embed msgs/restore-example.txt
	msgRestoreExampleRaw string
	MsgRestoreExample    = strings.TrimRight(msgRestoreExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
