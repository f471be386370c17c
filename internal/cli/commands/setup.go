// Package commands implements the spfxcheck subcommands.
package commands

import (
	"log/slog"

	"github.com/leapstack-labs/spfxcheck/internal/cli/config"
	"github.com/leapstack-labs/spfxcheck/internal/cli/output"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Fs       afero.Fs
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	return &CommandContext{
		Cfg:      config.FromContext(ctx),
		Logger:   config.GetLogger(ctx),
		Fs:       fsFromContext(cmd),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	}
}

// fsKey is used to store a filesystem override in context.
type fsKey struct{}

// FsKey returns the context key for overriding the filesystem commands read
// projects from.
func FsKey() interface{} {
	return fsKey{}
}

func fsFromContext(cmd *cobra.Command) afero.Fs {
	if ctx := cmd.Context(); ctx != nil {
		if fs, ok := ctx.Value(fsKey{}).(afero.Fs); ok {
			return fs
		}
	}
	return afero.NewOsFs()
}
