package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/rwalk/internal/walk"
)

//go:embed experiment.cue
var schemaSrc string

// ErrInvalidExperiment reports an experiment that fails schema validation.
var ErrInvalidExperiment = errors.New("invalid experiment")

// Experiment is a validated experiment definition.
type Experiment struct {
	Count  int    `json:"count"`
	X0     int64  `json:"x0"`
	Step   int64  `json:"step"`
	Seed   int64  `json:"seed"`
	Output string `json:"output,omitempty"`
}

// Params returns the walk parameters of the experiment.
func (e Experiment) Params() walk.Params {
	return walk.Params{Count: e.Count, X0: e.X0, Step: e.Step, Seed: e.Seed}
}

// experimentFile mirrors the YAML layout. Pointers distinguish absent
// fields, which take schema defaults, from explicit zeros.
type experimentFile struct {
	Count  *int64  `yaml:"count"`
	X0     *int64  `yaml:"x0"`
	Step   *int64  `yaml:"step"`
	Seed   *int64  `yaml:"seed"`
	Output *string `yaml:"output"`
}

func (f experimentFile) fields() map[string]any {
	m := make(map[string]any)
	if f.Count != nil {
		m["count"] = *f.Count
	}
	if f.X0 != nil {
		m["x0"] = *f.X0
	}
	if f.Step != nil {
		m["step"] = *f.Step
	}
	if f.Seed != nil {
		m["seed"] = *f.Seed
	}
	if f.Output != nil {
		m["output"] = *f.Output
	}
	return m
}

// LoadExperiment reads an experiment from a .yaml, .yml or .cue file.
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment file: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return ParseExperimentYAML(data)
	case ".cue":
		return ParseExperimentCUE(path, data)
	default:
		return nil, fmt.Errorf("unsupported experiment file extension %q", ext)
	}
}

// ParseExperimentYAML decodes YAML strictly and validates it.
func ParseExperimentYAML(data []byte) (*Experiment, error) {
	var f experimentFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		// An empty document means "all defaults".
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	ctx := cuecontext.New()
	v := ctx.Encode(f.fields())
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to encode experiment: %w", err)
	}
	return validate(ctx, v)
}

// ParseExperimentCUE compiles CUE source and validates it.
func ParseExperimentCUE(filename string, data []byte) (*Experiment, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile CUE: %w", err)
	}
	return validate(ctx, v)
}

// DefaultExperiment returns the schema defaults.
func DefaultExperiment() (*Experiment, error) {
	ctx := cuecontext.New()
	return validate(ctx, ctx.CompileString("{}"))
}

// validate unifies v with #Experiment and decodes the result.
func validate(ctx *cue.Context, v cue.Value) (*Experiment, error) {
	schema := ctx.CompileString(schemaSrc, cue.Filename("experiment.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Experiment"))

	unified := def.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExperiment, err)
	}

	var exp Experiment
	if err := unified.Decode(&exp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExperiment, err)
	}
	return &exp, nil
}
