// Package costreport reads the per basic block cost report written by the
// offload solver.
package costreport

import (
	"errors"
	"fmt"
)

// Layout of the solver's cost report. The first HeaderLines lines hold the
// policy totals, a separator, the decision dump and the column header:
//
//	BBLID  Decision  Parallelism  CPU  PIM  Difference  Hash(hi)  Hash(lo)
//	    0         P            4  ...  ...       2.0e3       ...       ...
//
// Only the decision and the difference column are used.
const (
	HeaderLines = 7

	DecisionField = 1
	// the difference column is followed by the two hash columns
	CostDiffFromEnd = 3

	MinFields = 4
)

// DecisionPIM is the decision label of a block offloaded to PIM.
const DecisionPIM = "P"

var (
	// ErrMalformedLine is returned for a block line that does not have
	// enough fields.
	ErrMalformedLine = errors.New("malformed cost line")
	// ErrRange is returned when a block range does not fit the report.
	ErrRange = errors.New("invalid block range")
)

// ParseError reports the line of the cost file that could not be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Block is one row of the report.
type Block struct {
	ID       int
	Decision string
	CostDiff float64
}

// PIM returns true if the solver offloaded the block.
func (b Block) PIM() bool {
	return b.Decision == DecisionPIM
}

// Report holds the blocks in file order. Block IDs are contiguous from 0.
type Report struct {
	Blocks []Block
}

// Len returns the number of blocks.
func (r *Report) Len() int {
	return len(r.Blocks)
}

// Decisions returns the decision label of every block.
func (r *Report) Decisions() []string {
	ret := make([]string, len(r.Blocks))
	for i, b := range r.Blocks {
		ret[i] = b.Decision
	}
	return ret
}

// CostDiffs returns the cost differential of every block.
func (r *Report) CostDiffs() []float64 {
	ret := make([]float64, len(r.Blocks))
	for i, b := range r.Blocks {
		ret[i] = b.CostDiff
	}
	return ret
}

// Range resolves a requested block range. A bound of -1 selects the whole
// report. The returned bounds are inclusive.
func (r *Report) Range(lb, ub int) (int, int, error) {
	if lb == -1 || ub == -1 {
		lb = 0
		ub = len(r.Blocks) - 1
	}
	if len(r.Blocks) == 0 {
		return 0, 0, fmt.Errorf("%w: report has no blocks", ErrRange)
	}
	if lb < 0 || ub < lb || ub >= len(r.Blocks) {
		return 0, 0, fmt.Errorf("%w: [%d, %d] with %d blocks", ErrRange, lb, ub, len(r.Blocks))
	}
	return lb, ub, nil
}

// Slice returns the blocks lb..ub (inclusive). The bounds must come from Range.
func (r *Report) Slice(lb, ub int) *Report {
	return &Report{Blocks: r.Blocks[lb : ub+1]}
}
