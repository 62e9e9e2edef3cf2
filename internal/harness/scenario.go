package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/rwalk/internal/walk"
)

// Scenario defines one reproducibility check.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Params are the walk inputs. Step defaults to 1 when omitted.
	Params ScenarioParams `yaml:"params"`

	// Expect is the literal walk, if known.
	Expect []int64 `yaml:"expect,omitempty"`

	// Assertions are property checks evaluated on the walk.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// ScenarioParams mirrors walk.Params with an optional step.
type ScenarioParams struct {
	Count int    `yaml:"count"`
	X0    int64  `yaml:"x0"`
	Step  *int64 `yaml:"step,omitempty"`
	Seed  int64  `yaml:"seed"`
}

// WalkParams converts to walk.Params.
func (p ScenarioParams) WalkParams() walk.Params {
	wp := walk.Params{Count: p.Count, X0: p.X0, Step: 1, Seed: p.Seed}
	if p.Step != nil {
		wp.Step = *p.Step
	}
	return wp
}

// Assertion is a property check on a generated walk.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Repeat is the number of regenerations (deterministic). Default 2.
	Repeat int `yaml:"repeat,omitempty"`

	// Value is the expected final position (final).
	Value *int64 `yaml:"value,omitempty"`
}

// Assertion type constants.
const (
	AssertLength        = "length"
	AssertStepBound     = "step_bound"
	AssertParity        = "parity"
	AssertDeterministic = "deterministic"
	AssertFinal         = "final"
)

var validAssertions = map[string]bool{
	AssertLength:        true,
	AssertStepBound:     true,
	AssertParity:        true,
	AssertDeterministic: true,
	AssertFinal:         true,
}

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields (typos) and missing required fields are errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := scenario.validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario missing required field: name")
	}
	if len(s.Expect) == 0 && len(s.Assertions) == 0 {
		return fmt.Errorf("scenario %q: needs expect or assertions", s.Name)
	}
	for i, a := range s.Assertions {
		if !validAssertions[a.Type] {
			return fmt.Errorf("scenario %q: assertion[%d]: unknown type %q", s.Name, i, a.Type)
		}
		if a.Type == AssertFinal && a.Value == nil {
			return fmt.Errorf("scenario %q: assertion[%d]: final requires value", s.Name, i)
		}
		if a.Repeat < 0 {
			return fmt.Errorf("scenario %q: assertion[%d]: repeat must be non-negative", s.Name, i)
		}
	}
	return nil
}
