package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/bitrel/engine/bitgrid"
	"github.com/roach88/bitrel/rel"
)

// NewRandomCommand renders a randomized relation.
func NewRandomCommand(opts *RootOptions) *cobra.Command {
	var seed uint64
	var seeded bool

	cmd := &cobra.Command{
		Use:   "random ROWS COLS PROB",
		Short: "Render a randomized relation",
		Long:          "Render a ROWS x COLS relation with each bit set with probability PROB in (0, 1].",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeded = cmd.Flags().Changed("seed")
			return runRandom(cmd, opts, args, seed, seeded)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "fix the random source seed for reproducible output")

	return cmd
}

func runRandom(cmd *cobra.Command, opts *RootOptions, args []string, seed uint64, seeded bool) error {
	rows, err := strconv.Atoi(args[0])
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid row count %q", args[0]))
	}
	cols, err := strconv.Atoi(args[1])
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid column count %q", args[1]))
	}
	prob, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid probability %q", args[2]))
	}

	var engOpts []bitgrid.Option
	if seeded {
		engOpts = append(engOpts, bitgrid.WithSeed(seed))
	}
	ctx, err := rel.NewContext(rel.WithEngine(bitgrid.New(engOpts...)))
	if err != nil {
		return WrapExitError(ExitCommandError, "create context", err)
	}
	defer ctx.Close()

	r, err := ctx.New(rows, cols)
	if err != nil {
		return WrapExitError(ExitCommandError, "mint relation", err)
	}
	if err := r.Random(prob); err != nil {
		return WrapExitError(ExitCommandError, "randomize relation", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Success(newGridData("", r), r.String())
}
