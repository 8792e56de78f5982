package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/bitrel/rel"
)

// NewShowCommand renders one workspace relation.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show WORKSPACE NAME",
		Short:         "Render a workspace relation as a grid",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts, args[0], args[1])
		},
	}
}

func runShow(cmd *cobra.Command, opts *RootOptions, path, name string) error {
	ws, err := loadWorkspace(path)
	if err != nil {
		return err
	}

	ctx, err := rel.NewContext()
	if err != nil {
		return WrapExitError(ExitCommandError, "create context", err)
	}
	defer ctx.Close()

	built, err := buildNamed(ctx, ws, name)
	if err != nil {
		return err
	}
	r := built[name]

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Success(newGridData(name, r), r.String())
}
