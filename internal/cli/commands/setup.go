package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/uirename/internal/cli/config"
	"github.com/leapstack-labs/uirename/internal/cli/output"
)

// configKey and fsKey are context keys set by the root command.
type (
	configKey struct{}
	fsKey     struct{}
)

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithFs stores the filesystem commands operate on.
func WithFs(ctx context.Context, fsys afero.Fs) context.Context {
	return context.WithValue(ctx, fsKey{}, fsys)
}

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Fs       afero.Fs
	Renderer *output.Renderer
}

// NewCommandContext collects the dependencies the root command stored on
// cmd's context, falling back to defaults when a command runs standalone.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok || cfg == nil {
		cfg = config.Default()
	}
	fsys, ok := ctx.Value(fsKey{}).(afero.Fs)
	if !ok || fsys == nil {
		fsys = afero.NewOsFs()
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(ctx),
		Fs:       fsys,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}
}

// ReportedError wraps an error the command already showed to the user, so
// the caller only needs to set the exit status.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var re *ReportedError
	return errors.As(err, &re)
}
