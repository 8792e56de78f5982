package harness

import (
	"sort"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders a result as deterministic text: the scenario name
// followed by every bound grid in name order.
func Snapshot(result *Result) []byte {
	names := make([]string, 0, len(result.Grids))
	for name := range result.Grids {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("scenario: ")
	b.WriteString(result.Scenario)
	b.WriteByte('\n')
	for _, name := range names {
		b.WriteByte('\n')
		b.WriteString(name)
		b.WriteString(":\n")
		b.WriteString(result.Grids[name])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// RunWithGolden runs a scenario and compares its snapshot against the
// golden file testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, Snapshot(result))

	return nil
}
