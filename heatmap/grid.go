package heatmap

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/pimprof/pimviz/costreport"
)

// DefaultWidth is the number of blocks per grid row.
const DefaultWidth = 10

// PIMLabel annotates cells of blocks offloaded to PIM.
const PIMLabel = "PIM"

// Grid is the reshaped, transformed block range. Values and Labels have the
// same shape; the last row is padded with 0 and "".
type Grid struct {
	Width  int
	Values [][]float64
	Labels [][]string

	// Limit is the largest absolute value in Values. The color scale spans
	// [-Limit, Limit].
	Limit float64
}

// Transform compresses a cost differential to a signed order of magnitude.
// The sign is flipped so PIM friendly blocks end up at the negative end of
// the scale. Differentials in [-1, 1] map to 0.
func Transform(c float64) float64 {
	a := math.Abs(c)
	if a <= 1 {
		return 0
	}
	if c > 0 {
		return -math.Log10(a)
	}
	return math.Log10(a)
}

// Label returns the annotation of a decision.
func Label(decision string) string {
	if decision == costreport.DecisionPIM {
		return PIMLabel
	}
	return ""
}

// Padding returns the number of filler cells needed to complete the last row
// of n cells.
func Padding(n, width int) int {
	return (width - n%width) % width
}

// BuildGrid pads, transforms and reshapes a block range.
func BuildGrid(costs []float64, decisions []string, width int) (*Grid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("grid width must be positive, got %d", width)
	}
	if len(costs) != len(decisions) {
		return nil, errors.New("cost and decision sequences differ in length")
	}

	n := len(costs) + Padding(len(costs), width)

	g := &Grid{Width: width}
	for start := 0; start < n; start += width {
		values := make([]float64, width)
		labels := make([]string, width)
		for i := range values {
			idx := start + i
			if idx >= len(costs) {
				break
			}
			values[i] = Transform(costs[idx])
			labels[i] = Label(decisions[idx])
			g.Limit = math.Max(g.Limit, math.Abs(values[i]))
		}
		g.Values = append(g.Values, values)
		g.Labels = append(g.Labels, labels)
	}

	return g, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int {
	return len(g.Values)
}

// RowLabels returns the row tick labels 0..Rows()-1.
func (g *Grid) RowLabels() []string {
	ret := make([]string, g.Rows())
	for i := range ret {
		ret[i] = strconv.Itoa(i)
	}
	return ret
}
