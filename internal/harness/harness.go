package harness

import (
	"fmt"
	"slices"

	"github.com/roach88/rwalk/internal/walk"
)

// Run generates the scenario's walk and evaluates every check.
// A returned error means the walk could not be generated at all; failed
// checks are reported in Result.Errors.
func Run(s *Scenario) (*Result, error) {
	p := s.Params.WalkParams()
	positions, err := walk.Generate(p)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	result := NewResult()
	result.Walk = positions

	if len(s.Expect) > 0 {
		checkExpect(result, s.Expect, positions)
	}
	for _, a := range s.Assertions {
		evaluate(result, a, p, positions)
	}
	return result, nil
}

func checkExpect(r *Result, expect []int64, got walk.Positions) {
	want := walk.Positions(expect)
	if slices.Equal(want, got) {
		return
	}
	r.AddError(fmt.Sprintf("expect: want %s, got %s", want, got))
}

func evaluate(r *Result, a Assertion, p walk.Params, positions walk.Positions) {
	var err error
	switch a.Type {
	case AssertLength:
		err = assertLength(positions, p.Count)
	case AssertStepBound:
		err = assertStepBound(positions, p.X0, p.Step)
	case AssertParity:
		err = assertParity(positions, p.X0, p.Step)
	case AssertDeterministic:
		err = assertDeterministic(positions, p, a.Repeat)
	case AssertFinal:
		err = assertFinal(positions, p.X0, *a.Value)
	default:
		err = fmt.Errorf("unknown assertion type %q", a.Type)
	}
	if err != nil {
		r.AddError(fmt.Sprintf("%s: %v", a.Type, err))
	}
}
