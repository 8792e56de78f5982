package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bitrel/rel"
)

// unaryOps and binaryOps map eval op names to their arity.
var (
	unaryOps  = []string{"transpose", "complement", "empty", "universal", "identity"}
	binaryOps = []string{"meet", "join", "compose"}
)

// NewEvalCommand applies one algebra operation to workspace relations.
func NewEvalCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval WORKSPACE OP NAME [NAME]",
		Short: "Apply an algebra operation and render the result",
		Long: "Apply one operation to relations from the workspace.\n\n" +
			"Unary ops:  transpose, complement, empty, universal, identity\n" +
			"Binary ops: meet, join, compose",
		Args:          cobra.RangeArgs(3, 4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, opts, args[0], args[1], args[2:])
		},
	}
}

func runEval(cmd *cobra.Command, opts *RootOptions, path, op string, names []string) error {
	arity, err := opArity(op)
	if err != nil {
		return err
	}
	if len(names) != arity {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("op %q takes %d relation name(s), got %d", op, arity, len(names)))
	}

	ws, err := loadWorkspace(path)
	if err != nil {
		return err
	}

	ctx, err := rel.NewContext()
	if err != nil {
		return WrapExitError(ExitCommandError, "create context", err)
	}
	defer ctx.Close()

	built, err := buildNamed(ctx, ws, names...)
	if err != nil {
		return err
	}

	result, err := applyOp(op, built[names[0]], names, built)
	if err != nil {
		return WrapExitError(ExitCommandError, "evaluate "+op, err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Success(newGridData("", result), result.String())
}

func opArity(op string) (int, error) {
	for _, u := range unaryOps {
		if op == u {
			return 1, nil
		}
	}
	for _, b := range binaryOps {
		if op == b {
			return 2, nil
		}
	}
	return 0, NewExitError(ExitCommandError, fmt.Sprintf("unknown op %q", op))
}

func applyOp(op string, a *rel.Relation, names []string, built map[string]*rel.Relation) (*rel.Relation, error) {
	switch op {
	case "transpose":
		return a.Transpose()
	case "complement":
		return a.Complement()
	case "empty":
		return a.Empty()
	case "universal":
		return a.Universal()
	case "identity":
		return a.Identity()
	case "meet":
		return a.Meet(built[names[1]])
	case "join":
		return a.Join(built[names[1]])
	case "compose":
		return a.Compose(built[names[1]])
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}
