package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/rwalk/internal/ir"
	"github.com/roach88/rwalk/internal/walk"
)

// AssertGolden compares positions, as canonical JSON, against
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, positions walk.Positions) error {
	t.Helper()

	data, err := ir.MarshalCanonical(ir.IntArray(positions))
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}

// RunWithGolden runs a scenario and compares its walk with the golden
// file named after the scenario.
func RunWithGolden(t *testing.T, s *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(s)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, s.Name, result.Walk); err != nil {
		return nil, err
	}
	return result, nil
}
