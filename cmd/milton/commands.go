package milton

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/milton/internal/version"
	"github.com/arthur-debert/milton/pkg/commands"
	"github.com/arthur-debert/milton/pkg/config"
	"github.com/arthur-debert/milton/pkg/filesystem"
	"github.com/arthur-debert/milton/pkg/guide"
	"github.com/arthur-debert/milton/pkg/logging"
	"github.com/arthur-debert/milton/pkg/migrate"
	"github.com/arthur-debert/milton/pkg/ui/confirmations"
	"github.com/arthur-debert/milton/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// app carries what every subcommand needs once the root command has
// parsed the global flags.
type app struct {
	verbosity  int
	assumeYes  bool
	noColor    bool
	configFile string

	cfg *config.Config
	fs  afero.Fs
}

// runtime wires the terminal collaborators for cmd.
func (a *app) runtime(cmd *cobra.Command) commands.Runtime {
	var confirmer confirmations.Confirmer = confirmations.NewConsoleDialog(cmd.InOrStdin(), cmd.OutOrStdout())
	if a.assumeYes {
		confirmer = confirmations.AssumeYes{}
	}
	return commands.Runtime{
		FS:        a.fs,
		Confirmer: confirmer,
		Sink:      a.sink(cmd),
	}
}

func (a *app) sink(cmd *cobra.Command) display.Sink {
	out := cmd.OutOrStdout()
	return display.NewTerminalSink(out, isTerminal(out))
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "milton",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			display.ConfigureColor(!a.noColor && isTerminal(cmd.OutOrStdout()))

			cfg, err := config.Load(a.configFile, configOverrides(cmd.Flags()))
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&a.assumeYes, "yes", "y", false, MsgFlagYes)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newObfuscateCmd(a))
	rootCmd.AddCommand(newRestoreCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newCleanCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func newObfuscateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "obfuscate <patterns>...",
		Short:   MsgObfuscateShort,
		Long:    MsgObfuscateLong,
		Example: MsgObfuscateExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Strs("patterns", args).Str("target", a.cfg.Target).Msg("Obfuscating")

			result, err := commands.Obfuscate(cmd.Context(), commands.ObfuscateOptions{
				Patterns:   args,
				Target:     a.cfg.Target,
				HostPrefix: a.cfg.HostPrefix,
				Layout:     a.cfg.Layout(),
				Runtime:    a.runtime(cmd),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Declined {
				_, _ = fmt.Fprintln(out, MsgAborted)
				return nil
			}
			_, _ = fmt.Fprintf(out, MsgQuarantine+"\n", len(result.Experiments), result.Quarantine)
			_, _ = fmt.Fprintln(out, result.Quarantine)
			return nil
		},
	}

	cmd.Flags().StringP("target", "t", "", MsgFlagTarget)
	return cmd
}

func newRestoreCmd(a *app) *cobra.Command {
	var (
		overwrite bool
		del       bool
	)

	cmd := &cobra.Command{
		Use:     "restore <quarantine>",
		Short:   MsgRestoreShort,
		Long:    MsgRestoreLong,
		Example: MsgRestoreExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask := a.cfg.Restore.Mask
			log.Info().Str("quarantine", args[0]).Str("mask", mask).Bool("overwrite", overwrite).Msg("Restoring")

			result, err := commands.Restore(cmd.Context(), commands.RestoreOptions{
				Quarantine: args[0],
				Mask:       mask,
				Overwrite:  overwrite,
				Delete:     del,
				HostPrefix: a.cfg.HostPrefix,
				Layout:     a.cfg.Layout(),
				Runtime:    a.runtime(cmd),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Declined {
				_, _ = fmt.Fprintln(out, MsgAborted)
				return nil
			}
			report := result.Report
			_, _ = fmt.Fprintf(out, MsgRestoreSummary+"\n", report.Transferred(), result.RestoreTo,
				report.Count(migrate.ActionSkipped), len(report.NoMatch))
			if result.Deleted {
				_, _ = fmt.Fprintf(out, MsgDeleted+"\n", result.Quarantine)
			}
			return nil
		},
	}

	cmd.Flags().StringP("mask", "m", "", MsgFlagMask)
	cmd.Flags().BoolVarP(&overwrite, "overwrite", "o", false, MsgFlagOverwrite)
	cmd.Flags().BoolVarP(&del, "delete", "d", false, MsgFlagDelete)
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.List(commands.ListOptions{Target: a.cfg.Target, FS: a.fs})
			if err != nil {
				return err
			}

			if len(result.Quarantines) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgNoQuarantines+"\n", result.Target)
				return nil
			}

			rows := make([][]string, 0, len(result.Quarantines))
			for _, q := range result.Quarantines {
				experiments := fmt.Sprint(q.Experiments)
				source := q.SourceTrunk
				if q.Error != "" {
					experiments = "-"
					source = q.Error
				}
				rows = append(rows, []string{q.Name, experiments, source})
			}
			a.sink(cmd).Table([]string{"QUARANTINE", "EXPERIMENTS", "SOURCE"}, rows)
			return nil
		},
	}

	cmd.Flags().StringP("target", "t", "", MsgFlagTarget)
	return cmd
}

func newCleanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "clean <path>",
		Short:   MsgCleanShort,
		Long:    MsgCleanLong,
		GroupID: "misc",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Clean(commands.CleanOptions{
				Path:    args[0],
				Runtime: a.runtime(cmd),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case result.Missing:
			case result.Declined:
				_, _ = fmt.Fprintln(out, MsgAborted)
			default:
				_, _ = fmt.Fprintf(out, MsgCleaned+"\n", len(result.Removed), result.Path)
			}
			return nil
		},
	}
}

func newGenConfigCmd(a *app) *cobra.Command {
	var (
		write     bool
		effective bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.GenConfigOptions{
				Write: write,
				Path:  a.configFile,
				FS:    a.fs,
			}
			if effective {
				opts.Effective = a.cfg
			}

			result, err := commands.GenConfig(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !write {
				_, _ = fmt.Fprint(out, result.ConfigContent)
				return nil
			}
			path := a.configFile
			if path == "" {
				path = config.DefaultPath()
			}
			if len(result.FilesWritten) == 0 {
				_, _ = fmt.Fprintf(out, MsgConfigKept, path)
				return nil
			}
			for _, f := range result.FilesWritten {
				_, _ = fmt.Fprintf(out, MsgConfigWritten, f)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	return cmd
}

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "guide [topic]",
		Short:     MsgGuideShort,
		GroupID:   "misc",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: guide.Topics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := ""
			if len(args) == 1 {
				topic = args[0]
			}

			var renderer guide.Renderer = guide.PlainRenderer{}
			if isTerminal(cmd.OutOrStdout()) {
				renderer = guide.NewGlamourRenderer()
			}

			content, err := guide.Render(topic, renderer)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), content)
			if topic == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "\n"+renderer.Render(guide.Index()))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgVersionCommit, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgVersionBuilt, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(args[0], 0755); err != nil {
				return err
			}
			header := &doc.GenManHeader{
				Title:   "MILTON",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, args[0])
		},
	}
}

// PrintError writes err to w in the error style.
func PrintError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, display.FormatError(err))
}
