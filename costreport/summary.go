package costreport

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes the cost differentials of a report.
type Summary struct {
	Blocks    int
	PIMBlocks int

	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Summarize computes the summary of rep. It fails on an empty report.
func Summarize(rep *Report) (Summary, error) {
	var s Summary
	var err error

	diffs := rep.CostDiffs()

	s.Blocks = len(rep.Blocks)
	for _, b := range rep.Blocks {
		if b.PIM() {
			s.PIMBlocks++
		}
	}

	if s.Min, err = stats.Min(diffs); err != nil {
		return s, fmt.Errorf("computing minimum: %w", err)
	}
	if s.Max, err = stats.Max(diffs); err != nil {
		return s, fmt.Errorf("computing maximum: %w", err)
	}
	if s.Mean, err = stats.Mean(diffs); err != nil {
		return s, fmt.Errorf("computing mean: %w", err)
	}
	if s.Median, err = stats.Median(diffs); err != nil {
		return s, fmt.Errorf("computing median: %w", err)
	}

	return s, nil
}
