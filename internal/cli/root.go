// Package cli provides the command-line interface for uirename.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/uirename/internal/cli/commands"
	"github.com/leapstack-labs/uirename/internal/cli/config"
	"github.com/leapstack-labs/uirename/internal/cli/output"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// fsOverrideKey lets callers of ExecuteContext supply the filesystem.
type fsOverrideKey struct{}

// WithFs returns a context that makes the commands operate on fsys.
func WithFs(ctx context.Context, fsys afero.Fs) context.Context {
	return context.WithValue(ctx, fsOverrideKey{}, fsys)
}

// NewRootCmd creates and returns the root command. Running it without a
// subcommand performs the rename.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uirename",
		Short: "Rename Unity UI scripts to their Crystal names",
		Long: `uirename moves the project's UI*.cs scripts to CrystalUI*.cs names.

Each entry of the embedded rename table is processed in order: the script is
renamed, then its .meta companion if there is one. Scripts that are already
renamed are skipped, so running the tool twice is harmless. A failed rename
is reported and the run carries on with the next entry.`,
		Example: `  # Rename in the project's UI directory
  uirename

  # Rename in another checkout, without waiting for Enter
  uirename --dir ./Assets/Game/Scripts/UI --no-pause

  # Machine-readable report
  uirename --output json`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			fsys, ok := ctx.Value(fsOverrideKey{}).(afero.Fs)
			if !ok || fsys == nil {
				fsys = afero.NewOsFs()
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			logger.Debug("configuration loaded",
				"dir", cfg.Dir,
				"output", cfg.OutputFormat,
				"no_pause", cfg.NoPause)

			ctx = commands.WithConfig(ctx, cfg)
			ctx = commands.WithFs(ctx, fsys)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunRename(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	pf := rootCmd.PersistentFlags()
	pf.String("dir", config.DefaultDir, "Directory holding the UI scripts")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.StringP("output", "o", config.DefaultOutput, "Output format (auto|text|markdown|json)")
	pf.Bool("no-pause", false, "Exit without waiting for Enter")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.ValidModes, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagDirname("dir")

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewTableCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// newLogger writes text logs to w. Only errors are shown unless verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command with args and reports failures on stderr.
// Errors the command already showed to the user are not printed again.
func Execute(ctx context.Context, args []string) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !commands.IsReported(err) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for uirename.

Bash:
  $ source <(uirename completion bash)

Zsh:
  $ uirename completion zsh > "${fpath[1]}/_uirename"

Fish:
  $ uirename completion fish | source

PowerShell:
  PS> uirename completion powershell | Out-String | Invoke-Expression
`,
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
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// Main is the process entry point: it runs the CLI and returns the exit status.
func Main() int {
	if err := Execute(context.Background(), os.Args[1:]); err != nil {
		return 1
	}
	return 0
}
