package harness

import (
	"fmt"
	"slices"

	"github.com/roach88/rwalk/internal/walk"
)

func assertLength(positions walk.Positions, count int) error {
	if len(positions) != count {
		return fmt.Errorf("want %d positions, got %d", count, len(positions))
	}
	return nil
}

func assertStepBound(positions walk.Positions, x0, step int64) error {
	prev := x0
	for i, x := range positions {
		if d := x - prev; d != step && d != -step {
			return fmt.Errorf("position %d moved by %d, want ±%d", i, d, step)
		}
		prev = x
	}
	return nil
}

// assertParity only applies to unit steps; larger steps are skipped.
func assertParity(positions walk.Positions, x0, step int64) error {
	if step != 1 {
		return nil
	}
	for i, x := range positions {
		d := x - x0
		if d < 0 {
			d = -d
		}
		if d%2 != int64((i+1)%2) {
			return fmt.Errorf("position %d: displacement %d has wrong parity", i, x-x0)
		}
	}
	return nil
}

func assertDeterministic(positions walk.Positions, p walk.Params, repeat int) error {
	if repeat == 0 {
		repeat = 2
	}
	for i := 0; i < repeat; i++ {
		again, err := walk.Generate(p)
		if err != nil {
			return err
		}
		if !slices.Equal(positions, again) {
			return fmt.Errorf("regeneration %d differs: %s vs %s", i+1, positions, again)
		}
	}
	return nil
}

func assertFinal(positions walk.Positions, x0, want int64) error {
	got := x0
	if len(positions) > 0 {
		got = positions[len(positions)-1]
	}
	if got != want {
		return fmt.Errorf("want final position %d, got %d", want, got)
	}
	return nil
}
