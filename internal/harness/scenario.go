package harness

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bitrel/rel"
)

// Scenario is a declarative algebra test case.
type Scenario struct {
	// Name identifies the scenario; golden files are keyed by it.
	Name string `yaml:"name"`

	// Description says what law or behavior the scenario pins down.
	Description string `yaml:"description,omitempty"`

	// Relations are the named inputs, built before any step runs.
	Relations map[string]RelationDef `yaml:"relations"`

	// Steps run in order; each binds its result to a fresh name.
	Steps []Step `yaml:"steps,omitempty"`

	// Assertions are checked after all steps succeed.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// RelationDef declares one input relation.
type RelationDef struct {
	Rows int     `yaml:"rows"`
	Cols int     `yaml:"cols"`
	Bits [][]int `yaml:"bits,omitempty"`
}

// Step applies one operation and binds the result.
//
// Supported ops: meet, join, compose, transpose, complement, empty,
// universal, identity, copy. Unary ops take one arg, binary ops two.
type Step struct {
	Bind string   `yaml:"bind"`
	Op   string   `yaml:"op"`
	Args []string `yaml:"args"`
}

// Assertion is a boolean check over bound names.
//
// Supported checks: equals, not_equals, subset, superset,
// strict_subset, strict_superset, is_empty (unary).
type Assertion struct {
	Check string `yaml:"check"`
	Left  string `yaml:"left"`
	Right string `yaml:"right,omitempty"`
	Want  bool   `yaml:"want"`
}

// Result holds the rendered grid of every bound name after a run.
type Result struct {
	Scenario string
	Grids    map[string]string
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: parse scenario: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("%s: scenario name is required", path)
	}
	return &s, nil
}

// Run builds the scenario in a fresh context, applies every step and
// checks every assertion. The context is torn down before returning.
func Run(s *Scenario) (*Result, error) {
	ctx, err := rel.NewContext()
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}
	defer ctx.Close()

	bound := make(map[string]*rel.Relation, len(s.Relations))

	// Build inputs in name order for deterministic ref assignment.
	names := make([]string, 0, len(s.Relations))
	for name := range s.Relations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		def := s.Relations[name]
		r, err := ctx.New(def.Rows, def.Cols, def.Bits...)
		if err != nil {
			return nil, fmt.Errorf("relation %q: %w", name, err)
		}
		bound[name] = r
	}

	for i, step := range s.Steps {
		if step.Bind == "" {
			return nil, fmt.Errorf("step %d: bind name is required", i)
		}
		if _, exists := bound[step.Bind]; exists {
			return nil, fmt.Errorf("step %d: name %q already bound", i, step.Bind)
		}
		r, err := applyStep(step, bound)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s -> %s): %w", i, step.Op, step.Bind, err)
		}
		bound[step.Bind] = r
	}

	for i, a := range s.Assertions {
		if err := checkAssertion(a, bound); err != nil {
			return nil, fmt.Errorf("assertion %d: %w", i, err)
		}
	}

	result := &Result{Scenario: s.Name, Grids: make(map[string]string, len(bound))}
	for name, r := range bound {
		result.Grids[name] = r.String()
	}
	return result, nil
}

// applyStep resolves a step's operands and dispatches the operation.
func applyStep(step Step, bound map[string]*rel.Relation) (*rel.Relation, error) {
	arg := func(i int) (*rel.Relation, error) {
		if i >= len(step.Args) {
			return nil, fmt.Errorf("op %q needs %d args, got %d", step.Op, i+1, len(step.Args))
		}
		r, ok := bound[step.Args[i]]
		if !ok {
			return nil, fmt.Errorf("unknown relation %q", step.Args[i])
		}
		return r, nil
	}

	a, err := arg(0)
	if err != nil {
		return nil, err
	}

	switch step.Op {
	case "meet", "join", "compose":
		b, err := arg(1)
		if err != nil {
			return nil, err
		}
		switch step.Op {
		case "meet":
			return a.Meet(b)
		case "join":
			return a.Join(b)
		default:
			return a.Compose(b)
		}
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
	case "copy":
		return a.Copy()
	default:
		return nil, fmt.Errorf("unknown op %q", step.Op)
	}
}

// checkAssertion evaluates one boolean check against its wanted value.
func checkAssertion(a Assertion, bound map[string]*rel.Relation) error {
	left, ok := bound[a.Left]
	if !ok {
		return fmt.Errorf("unknown relation %q", a.Left)
	}

	var (
		got bool
		err error
	)
	if a.Check == "is_empty" {
		got, err = left.IsEmpty()
	} else {
		right, ok := bound[a.Right]
		if !ok {
			return fmt.Errorf("unknown relation %q", a.Right)
		}
		switch a.Check {
		case "equals":
			got, err = left.Equals(right)
		case "not_equals":
			got, err = left.NotEquals(right)
		case "subset":
			got, err = left.IsSubset(right)
		case "superset":
			got, err = left.IsSuperset(right)
		case "strict_subset":
			got, err = left.IsStrictSubset(right)
		case "strict_superset":
			got, err = left.IsStrictSuperset(right)
		default:
			return fmt.Errorf("unknown check %q", a.Check)
		}
	}
	if err != nil {
		return fmt.Errorf("%s(%s, %s): %w", a.Check, a.Left, a.Right, err)
	}
	if got != a.Want {
		return fmt.Errorf("%s(%s, %s) = %v, want %v", a.Check, a.Left, a.Right, got, a.Want)
	}
	return nil
}
