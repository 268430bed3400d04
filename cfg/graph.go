package cfg

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/pimprof/pimviz/costreport"
	"github.com/pimprof/pimviz/heatmap"
)

// Outline colors of offloaded and non offloaded blocks.
const (
	OutlinePIM = "red"
	OutlineCPU = "green"
)

// Node is a basic block of the drawn graph.
type Node struct {
	id int64

	// Fill and Outline are empty for successors outside the drawn range;
	// those are drawn with the Graphviz defaults.
	Fill    string
	Outline string
}

// ID returns the block ID.
func (n Node) ID() int64 { return n.id }

// DOTID returns the block ID as node name.
func (n Node) DOTID() string { return strconv.FormatInt(n.id, 10) }

// Attributes returns the Graphviz attributes of the node.
func (n Node) Attributes() []encoding.Attribute {
	if n.Fill == "" {
		return nil
	}
	return []encoding.Attribute{
		{Key: "fillcolor", Value: n.Fill},
		{Key: "color", Value: n.Outline},
		{Key: "style", Value: "filled"},
	}
}

// Graph is a CFG heat map. Duplicate edges and self loops of the CFG are
// kept, hence the multigraph.
type Graph struct {
	*multi.DirectedGraph
	Name string
}

// Build creates the graph of blocks lb..ub (inclusive). Every block is filled
// with the color of its cost differential and outlined red if it was
// offloaded to PIM, green otherwise.
func Build(c *CFG, costs []float64, decisions []string, lb, ub int, sat heatmap.Saturation) (*Graph, error) {
	if len(costs) != len(decisions) {
		return nil, errors.New("cost and decision sequences differ in length")
	}
	if lb < 0 || ub < lb || ub >= len(costs) {
		return nil, fmt.Errorf("invalid block range [%d, %d] with %d blocks", lb, ub, len(costs))
	}

	g := &Graph{DirectedGraph: multi.NewDirectedGraph(), Name: "cfgheatmap"}

	for i := lb; i <= ub; i++ {
		outline := OutlineCPU
		if decisions[i] == costreport.DecisionPIM {
			outline = OutlinePIM
		}
		g.AddNode(Node{id: int64(i), Fill: sat.Color(costs[i]).Hex(), Outline: outline})
	}

	for i := lb; i <= ub; i++ {
		if i >= len(c.Successors) {
			return nil, fmt.Errorf("%w: no successor list for block %d", ErrMalformedCFG, i)
		}
		from := g.Node(int64(i))
		for _, s := range c.Successors[i] {
			to := g.Node(int64(s))
			if to == nil {
				to = Node{id: int64(s)}
				g.AddNode(to)
			}
			g.SetLine(g.NewLine(from, to))
		}
	}

	return g, nil
}

// MarshalDOT returns the graph in the Graphviz DOT language. Nodes and edges
// are written in block ID order.
func (g *Graph) MarshalDOT() ([]byte, error) {
	return dot.MarshalMulti(g, g.Name, "", "\t")
}
