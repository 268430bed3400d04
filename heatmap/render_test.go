package heatmap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid(t *testing.T) *Grid {
	costs := []float64{1e6, -1e6, 0, 10, -10, 1e3, 0.5, -2, 5e4, -5e4, 1, 7e2}
	decisions := []string{"P", "C", "C", "P", "C", "P", "C", "C", "P", "C", "C", "P"}

	g, err := BuildGrid(costs, decisions, DefaultWidth)
	require.NoError(t, err)
	return g
}

func TestRender(t *testing.T) {
	g := testGrid(t)

	hp, bp, err := Render(g, DefaultRenderOptions())
	require.NoError(t, err)
	require.NotNil(t, hp)
	require.NotNil(t, bp)

	assert.Equal(t, "Liberation", string(hp.Y.Tick.Label.Font.Typeface))
	assert.Equal(t, "Serif", string(bp.Y.Tick.Label.Font.Variant))

	ticks := bp.Y.Tick.Marker.Ticks(-7, 7)
	require.Len(t, ticks, 3)
	assert.Equal(t, "PIM friendly", ticks[0].Label)
	assert.Equal(t, "Neutral", ticks[1].Label)
	assert.Equal(t, "CPU friendly", ticks[2].Label)

	rows := hp.Y.Tick.Marker.Ticks(0, 1)
	require.Len(t, rows, 2)
	// row 0 is at the top
	assert.Equal(t, "0", rows[0].Label)
	assert.Equal(t, 1.0, rows[0].Value)
}

func TestRenderErrors(t *testing.T) {
	empty, err := BuildGrid(nil, nil, DefaultWidth)
	require.NoError(t, err)
	_, _, err = Render(empty, DefaultRenderOptions())
	assert.Error(t, err)

	opts := DefaultRenderOptions()
	opts.Colors = 1
	_, _, err = Render(testGrid(t), opts)
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"cfgheatmap.pdf", "cfgheatmap.png", "cfgheatmap.svg"} {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(dir, name)
			require.NoError(t, Save(testGrid(t), filename, DefaultRenderOptions()))

			info, err := os.Stat(filename)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}

	raw, err := os.ReadFile(filepath.Join(dir, "cfgheatmap.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestSaveNeutralGrid(t *testing.T) {
	g, err := BuildGrid([]float64{0, 0.5, -0.5}, []string{"C", "C", "C"}, DefaultWidth)
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "neutral.pdf")
	require.NoError(t, Save(g, filename, DefaultRenderOptions()))

	raw, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestColorBar(t *testing.T) {
	hm := colorBar(4, divergingScale(4).Palette(8), 8)

	xmin, xmax, ymin, ymax := hm.DataRange()
	assert.InDelta(t, -0.5, xmin, 1e-12)
	assert.InDelta(t, 0.5, xmax, 1e-12)
	assert.InDelta(t, -4, ymin, 1e-12)
	assert.InDelta(t, 4, ymax, 1e-12)

	c, r := hm.GridXYZ.Dims()
	assert.Equal(t, 1, c)
	assert.Equal(t, 8, r)
	assert.InDelta(t, -3.5, hm.GridXYZ.Z(0, 0), 1e-12)
	assert.InDelta(t, 3.5, hm.GridXYZ.Z(0, 7), 1e-12)
}

func TestSaveUnknownFormat(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "cfgheatmap.xyz")
	assert.Error(t, Save(testGrid(t), filename, DefaultRenderOptions()))
}

func TestDivergingScale(t *testing.T) {
	cm := divergingScale(5)
	assert.Equal(t, -5.0, cm.Min())
	assert.Equal(t, 5.0, cm.Max())

	low, err := cm.At(-5)
	require.NoError(t, err)
	high, err := cm.At(5)
	require.NoError(t, err)

	// PIM friendly end is red, CPU friendly end is blue
	lr, _, lb, _ := low.RGBA()
	hr, _, hb, _ := high.RGBA()
	assert.Greater(t, lr, lb)
	assert.Greater(t, hb, hr)

	p := cm.Palette(11).Colors()
	assert.Len(t, p, 11)
	assert.Equal(t, low, p[0])
	assert.Equal(t, high, p[10])
}
