package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rwalk/internal/walk"
)

func int64p(v int64) *int64 { return &v }

func TestRunReferenceScenarios(t *testing.T) {
	for _, name := range []string{"reference_seed1", "reference_seed42", "long_walk_properties"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestRunWithGoldenReference(t *testing.T) {
	for _, name := range []string{"reference_seed1", "reference_seed42"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass)
		})
	}
}

func TestAssertGoldenEmptyWalk(t *testing.T) {
	positions, err := walk.Walk(0)
	require.NoError(t, err)
	require.NoError(t, AssertGolden(t, "empty", positions))
}

func TestRunExpectMismatch(t *testing.T) {
	s := &Scenario{
		Name:   "wrong",
		Params: ScenarioParams{Count: 3, Seed: 1},
		Expect: []int64{1, 2, 3},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "want [1, 2, 3], got [-1, 0, 1]")
}

func TestRunFinalMismatch(t *testing.T) {
	s := &Scenario{
		Name:       "final",
		Params:     ScenarioParams{Count: 10, Seed: 42},
		Assertions: []Assertion{{Type: AssertFinal, Value: int64p(5)}},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "want final position 5, got -2")
}

func TestRunCollectsAllFailures(t *testing.T) {
	s := &Scenario{
		Name:   "many",
		Params: ScenarioParams{Count: 4, Seed: 1},
		Expect: []int64{9, 9, 9, 9},
		Assertions: []Assertion{
			{Type: AssertFinal, Value: int64p(100)},
			{Type: AssertLength},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Len(t, result.Errors, 2)
}

func TestRunInvalidParams(t *testing.T) {
	s := &Scenario{
		Name:       "bad",
		Params:     ScenarioParams{Count: -2},
		Assertions: []Assertion{{Type: AssertLength}},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, walk.ErrInvalidArgument)
}

func TestScenarioParamsDefaultStep(t *testing.T) {
	assert.Equal(t, int64(1), ScenarioParams{}.WalkParams().Step)
	assert.Equal(t, int64(4), ScenarioParams{Step: int64p(4)}.WalkParams().Step)
}

func TestAssertionHelpers(t *testing.T) {
	assert.NoError(t, assertLength(walk.Positions{1, 2}, 2))
	assert.Error(t, assertLength(walk.Positions{1}, 2))

	assert.NoError(t, assertStepBound(walk.Positions{2, 0, 2}, 0, 2))
	err := assertStepBound(walk.Positions{1, 3}, 0, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 1 moved by 2")

	assert.NoError(t, assertParity(walk.Positions{1, 0, -1}, 0, 1))
	assert.Error(t, assertParity(walk.Positions{1, 1}, 0, 1))
	assert.NoError(t, assertParity(walk.Positions{3, 3}, 0, 3), "parity skipped for wide steps")

	assert.NoError(t, assertFinal(walk.Positions{}, 7, 7))
	assert.Error(t, assertFinal(walk.Positions{1}, 0, 2))

	assert.NoError(t, assertDeterministic(walk.Positions{-1, 0}, walk.Params{Count: 2, Step: 1, Seed: 1}, 0))
	assert.Error(t, assertDeterministic(walk.Positions{1, 2}, walk.Params{Count: 2, Step: 1, Seed: 1}, 1))
}

func TestLoadScenarioErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"missing name", "params: {count: 1}\nexpect: [1]\n", "missing required field: name"},
		{"typo field", "name: x\nassertion: []\n", "field assertion not found"},
		{"nothing to check", "name: x\nparams: {count: 1}\n", "needs expect or assertions"},
		{"unknown assertion", "name: x\nassertions: [{type: bogus}]\n", `unknown type "bogus"`},
		{"final without value", "name: x\nassertions: [{type: final}]\n", "final requires value"},
		{"negative repeat", "name: x\nassertions: [{type: deterministic, repeat: -1}]\n", "repeat must be non-negative"},
		{"malformed", "name: [\n", "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "s.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
