package cfg

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"

	"github.com/pimprof/pimviz/heatmap"
)

const testCFG = `3
# block successors
0 1 2
1 3
2 3 2

3
`

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader(testCFG))
	require.NoError(t, err)

	assert.Equal(t, 3, c.MaxBlockID)
	assert.Equal(t, [][]int{{1, 2}, {3}, {3, 2}, {}}, c.Successors)
	assert.Equal(t, []int{3, 2}, c.Succ(2))
	assert.Nil(t, c.Succ(7))
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: "\n# nothing\n"},
		{name: "bad header", input: "x\n0 1\n"},
		{name: "bad successor", input: "1\n0 one\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedCFG)
		})
	}
}

func TestReadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "cfg.out")
	require.NoError(t, os.WriteFile(filename, []byte(testCFG), 0644))

	c, err := ReadFile(filename)
	require.NoError(t, err)
	assert.Len(t, c.Successors, 4)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func testGraph(t *testing.T, lb, ub int) *Graph {
	c, err := Read(strings.NewReader(testCFG))
	require.NoError(t, err)

	costs := []float64{100, -100, 0, 1e9}
	decisions := []string{"P", "C", "C", "P"}

	g, err := Build(c, costs, decisions, lb, ub, heatmap.DefaultSaturation)
	require.NoError(t, err)
	return g
}

func TestBuild(t *testing.T) {
	g := testGraph(t, 0, 3)

	assert.Equal(t, 4, g.Nodes().Len())

	n0 := g.Node(0).(Node)
	assert.Equal(t, "#ffbfbf", n0.Fill)
	assert.Equal(t, OutlinePIM, n0.Outline)

	n1 := g.Node(1).(Node)
	assert.Equal(t, "#bfffbf", n1.Fill)
	assert.Equal(t, OutlineCPU, n1.Outline)

	assert.Equal(t, "#ffffff", g.Node(2).(Node).Fill)
	assert.Equal(t, "#ff0000", g.Node(3).(Node).Fill)

	assert.True(t, g.HasEdgeFromTo(0, 1))
	assert.True(t, g.HasEdgeFromTo(0, 2))
	assert.True(t, g.HasEdgeFromTo(2, 2))
	assert.False(t, g.HasEdgeFromTo(1, 0))
	assert.Equal(t, 1, lineCount(g.Lines(2, 3)))
}

func lineCount(it graph.Lines) int {
	n := 0
	for it.Next() {
		n++
	}
	return n
}

func TestBuildSubRange(t *testing.T) {
	g := testGraph(t, 1, 2)

	// block 3 is only a successor and keeps the default style
	assert.Equal(t, 3, g.Nodes().Len())
	assert.Nil(t, g.Node(0))
	n3 := g.Node(3).(Node)
	assert.Empty(t, n3.Fill)
	assert.Nil(t, n3.Attributes())
}

func TestBuildErrors(t *testing.T) {
	c, err := Read(strings.NewReader("1\n0 1\n"))
	require.NoError(t, err)

	_, err = Build(c, []float64{1, 2}, []string{"P"}, 0, 0, heatmap.DefaultSaturation)
	assert.Error(t, err)

	_, err = Build(c, []float64{1, 2}, []string{"P", "C"}, 0, 2, heatmap.DefaultSaturation)
	assert.Error(t, err)

	// block 1 has no successor line
	_, err = Build(c, []float64{1, 2}, []string{"P", "C"}, 0, 1, heatmap.DefaultSaturation)
	assert.ErrorIs(t, err, ErrMalformedCFG)
}

func TestMarshalDOT(t *testing.T) {
	raw, err := testGraph(t, 0, 3).MarshalDOT()
	require.NoError(t, err)
	out := string(raw)

	assert.True(t, strings.HasPrefix(out, "digraph cfgheatmap {"), out)
	assert.Contains(t, out, "fillcolor=")
	assert.Contains(t, out, "#ffbfbf")
	assert.Contains(t, out, "color=red")
	assert.Contains(t, out, "color=green")
	assert.Contains(t, out, "style=filled")
	assert.Contains(t, out, "0 -> 1")
	assert.Contains(t, out, "2 -> 2")
}

func TestMarshalDOTStable(t *testing.T) {
	want, err := testGraph(t, 0, 3).MarshalDOT()
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		got, err := testGraph(t, 0, 3).MarshalDOT()
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	}

	// edges follow the block IDs
	out := string(want)
	last := -1
	for _, e := range []string{"0 -> 1", "0 -> 2", "1 -> 3", "2 -> 2", "2 -> 3"} {
		i := strings.Index(out, e)
		require.GreaterOrEqual(t, i, 0, e)
		assert.Greater(t, i, last, e)
		last = i
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	dotFile := filepath.Join(dir, "cfgheatmap.gv")
	outFile := filepath.Join(dir, "cfgheatmap.gv.pdf")

	err := Render(testGraph(t, 0, 3), dotFile, outFile, "pdf")

	_, statErr := os.Stat(dotFile)
	require.NoError(t, statErr)

	if _, lookErr := exec.LookPath("dot"); lookErr != nil {
		assert.ErrorIs(t, err, ErrNoDot)
		t.Skip("graphviz not installed")
	}
	require.NoError(t, err)

	info, err := os.Stat(outFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
