package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bitrel/rel"
)

// checkData is the JSON payload for a comparison result.
type checkData struct {
	Check  string `json:"check"`
	Result bool   `json:"result"`
}

// NewCheckCommand evaluates a comparison between workspace relations.
// A false result exits with code 1, so checks compose in shell scripts.
func NewCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check WORKSPACE CHECK NAME [NAME]",
		Short: "Evaluate a comparison between workspace relations",
		Long: "Evaluate one comparison over relations from the workspace.\n\n" +
			"Unary checks:  is_empty\n" +
			"Binary checks: equals, not_equals, subset, superset, strict_subset, strict_superset",
		Args:          cobra.RangeArgs(3, 4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0], args[1], args[2:])
		},
	}
}

func runCheck(cmd *cobra.Command, opts *RootOptions, path, check string, names []string) error {
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

	result, err := applyCheck(check, names, built)
	if err != nil {
		return err
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if err := f.Success(checkData{Check: check, Result: result}, fmt.Sprintf("%v", result)); err != nil {
		return err
	}
	if !result {
		return NewExitError(ExitFailure, fmt.Sprintf("check %s is false", check))
	}
	return nil
}

func applyCheck(check string, names []string, built map[string]*rel.Relation) (bool, error) {
	need := 2
	if check == "is_empty" {
		need = 1
	}
	if len(names) != need {
		return false, NewExitError(ExitCommandError,
			fmt.Sprintf("check %q takes %d relation name(s), got %d", check, need, len(names)))
	}

	a := built[names[0]]

	var (
		result bool
		err    error
	)
	switch check {
	case "is_empty":
		result, err = a.IsEmpty()
	case "equals":
		result, err = a.Equals(built[names[1]])
	case "not_equals":
		result, err = a.NotEquals(built[names[1]])
	case "subset":
		result, err = a.IsSubset(built[names[1]])
	case "superset":
		result, err = a.IsSuperset(built[names[1]])
	case "strict_subset":
		result, err = a.IsStrictSubset(built[names[1]])
	case "strict_superset":
		result, err = a.IsStrictSuperset(built[names[1]])
	default:
		return false, NewExitError(ExitCommandError, fmt.Sprintf("unknown check %q", check))
	}
	if err != nil {
		return false, WrapExitError(ExitCommandError, "evaluate "+check, err)
	}
	return result, nil
}
