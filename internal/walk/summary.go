package walk

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics of a walk.
type Summary struct {
	Steps   int     `json:"steps"`
	Final   int64   `json:"final"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Returns int     `json:"returns"` // visits back to x0
}

// Summarize computes statistics over positions. x0 is needed to count
// returns to the starting point. An empty walk yields a zero Summary
// with Final set to x0.
func Summarize(positions Positions, x0 int64) (Summary, error) {
	s := Summary{Steps: len(positions), Final: x0}
	if len(positions) == 0 {
		return s, nil
	}
	s.Final = positions[len(positions)-1]

	data := make(stats.Float64Data, len(positions))
	for i, v := range positions {
		data[i] = float64(v)
		if v == x0 {
			s.Returns++
		}
	}

	var err error
	if s.Min, err = stats.Min(data); err != nil {
		return s, fmt.Errorf("summarize min: %w", err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, fmt.Errorf("summarize max: %w", err)
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, fmt.Errorf("summarize mean: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, fmt.Errorf("summarize stddev: %w", err)
	}
	return s, nil
}
