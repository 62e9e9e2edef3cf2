package walk

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a precondition violation on walk parameters.
var ErrInvalidArgument = errors.New("invalid argument")

// MaxCount is the largest walk Generate accepts (8 GiB of positions).
const MaxCount = 1 << 30

// preallocLimit bounds the capacity reserved up front for a walk.
const preallocLimit = 1 << 16

// UniformSource draws floats uniformly from [lo, hi). *MT19937 implements it.
type UniformSource interface {
	Uniform(lo, hi float64) float64
}

// Positions is the sequence of positions after each step.
// The initial position is not part of it.
type Positions []int64

// Params fully determines a walk.
type Params struct {
	Count int   `json:"count" yaml:"count"`
	X0    int64 `json:"x0" yaml:"x0"`
	Step  int64 `json:"step" yaml:"step"`
	Seed  int64 `json:"seed" yaml:"seed"`
}

// DefaultParams returns count steps from 0 with unit step and seed 0.
func DefaultParams(count int) Params {
	return Params{Count: count, X0: 0, Step: 1, Seed: 0}
}

// Validate checks the preconditions of Generate.
func (p Params) Validate() error {
	if p.Count < 0 {
		return fmt.Errorf("%w: count must be non-negative, got %d", ErrInvalidArgument, p.Count)
	}
	if p.Count > MaxCount {
		return fmt.Errorf("%w: count must be at most %d, got %d", ErrInvalidArgument, MaxCount, p.Count)
	}
	if p.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidArgument, p.Step)
	}
	return nil
}

// Option adjusts Params for Walk.
type Option func(*Params)

// WithX0 sets the initial position.
func WithX0(x0 int64) Option {
	return func(p *Params) { p.X0 = x0 }
}

// WithStep sets the step magnitude.
func WithStep(step int64) Option {
	return func(p *Params) { p.Step = step }
}

// WithSeed sets the generator seed.
func WithSeed(seed int64) Option {
	return func(p *Params) { p.Seed = seed }
}

// Walk generates count steps using DefaultParams adjusted by opts.
func Walk(count int, opts ...Option) (Positions, error) {
	p := DefaultParams(count)
	for _, opt := range opts {
		opt(&p)
	}
	return Generate(p)
}

// Generate produces the walk described by p from a fresh stream seeded
// with p.Seed.
func Generate(p Params) (Positions, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return GenerateFrom(NewMT19937(p.Seed), p.Count, p.X0, p.Step), nil
}

// GenerateFrom consumes count draws from src and returns the resulting
// positions. A draw of exactly 0 moves down. With *MT19937 the state
// advances by two 32-bit outputs per step.
func GenerateFrom(src UniformSource, count int, x0, step int64) Positions {
	out := make(Positions, 0, min(count, preallocLimit))
	x := x0
	for i := 0; i < count; i++ {
		if src.Uniform(-1, +1) > 0 {
			x += step
		} else {
			x -= step
		}
		out = append(out, x)
	}
	return out
}

// String formats the positions as a bracketed, comma-separated list.
func (p Positions) String() string {
	buf := make([]byte, 0, 2+len(p)*4)
	buf = append(buf, '[')
	for i, v := range p {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = fmt.Appendf(buf, "%d", v)
	}
	buf = append(buf, ']')
	return string(buf)
}
