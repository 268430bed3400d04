package heatmap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RenderOptions configures the rendering of a grid.
type RenderOptions struct {
	// Size of the whole figure, color bar included.
	Width  vg.Length
	Height vg.Length

	ColorBarWidth vg.Length

	// Only the typeface and the variant are used; sizes stay at the plot
	// defaults.
	Font font.Font

	// Ticks of the color bar.
	Ticks []plot.Tick

	// Colors is the number of palette entries, at least 2.
	Colors int

	Title string
}

// DefaultRenderOptions returns a serif figure with the PIM friendly, neutral
// and CPU friendly color bar ticks at -7, 0 and 7.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:         6.4 * vg.Inch,
		Height:        4.8 * vg.Inch,
		ColorBarWidth: 1.4 * vg.Inch,
		Font:          font.Font{Typeface: "Liberation", Variant: "Serif"},
		Ticks: []plot.Tick{
			{Value: -7, Label: "PIM friendly"},
			{Value: 0, Label: "Neutral"},
			{Value: 7, Label: "CPU friendly"},
		},
		Colors: 255,
	}
}

// gridXYZ exposes a grid to the heat map plotter. Row 0 of the grid is drawn
// at the top.
type gridXYZ struct {
	g *Grid
}

func (x gridXYZ) Dims() (c, r int)   { return x.g.Width, x.g.Rows() }
func (x gridXYZ) Z(c, r int) float64 { return x.g.Values[x.g.Rows()-1-r][c] }
func (x gridXYZ) X(c int) float64    { return float64(c) }
func (x gridXYZ) Y(r int) float64    { return float64(r) }

// barXYZ is a single column of n cells spanning [-limit, limit]. Every cell
// holds the value at its center.
type barXYZ struct {
	limit float64
	n     int
}

func (b barXYZ) Dims() (c, r int)   { return 1, b.n }
func (b barXYZ) Z(_, r int) float64 { return b.Y(r) }
func (b barXYZ) X(int) float64      { return 0 }
func (b barXYZ) Y(r int) float64 {
	return -b.limit + (float64(r)+0.5)*2*b.limit/float64(b.n)
}

// colorBar draws the scale with filled rectangles. plotter.ColorBar uses a
// 16 bit image the PDF backend cannot embed.
func colorBar(limit float64, pal palette.Palette, n int) *plotter.HeatMap {
	hm := plotter.NewHeatMap(barXYZ{limit: limit, n: n}, pal)
	hm.Min, hm.Max = -limit, limit
	return hm
}

// Render builds the heat map plot and its color bar.
func Render(g *Grid, opts RenderOptions) (*plot.Plot, *plot.Plot, error) {
	if g.Rows() == 0 {
		return nil, nil, errors.New("cannot render an empty grid")
	}
	if opts.Colors < 2 {
		return nil, nil, fmt.Errorf("need at least 2 colors, got %d", opts.Colors)
	}

	// an all neutral grid still needs a non empty scale
	limit := g.Limit
	if limit == 0 {
		limit = 1
	}
	cm := divergingScale(limit)

	pal := cm.Palette(opts.Colors)
	hm := plotter.NewHeatMap(gridXYZ{g}, pal)
	hm.Min, hm.Max = -limit, limit

	p := plot.New()
	p.Title.Text = opts.Title
	p.Add(hm)

	labels, err := annotations(g, opts.Font)
	if err != nil {
		return nil, nil, err
	}
	if labels != nil {
		p.Add(labels)
	}

	p.X.Tick.Marker = plot.ConstantTicks(columnTicks(g.Width))
	p.Y.Tick.Marker = plot.ConstantTicks(rowTicks(g))
	setFont(p, opts.Font)

	bar := plot.New()
	bar.Add(colorBar(limit, pal, opts.Colors))
	bar.HideX()
	bar.Y.Tick.Marker = plot.ConstantTicks(opts.Ticks)
	bar.Y.Tick.Length = 0
	setFont(bar, opts.Font)

	return p, bar, nil
}

// Save renders g to filename. The output format follows the file extension
// and defaults to PDF.
func Save(g *Grid, filename string, opts RenderOptions) error {
	hp, bp, err := Render(g, opts)
	if err != nil {
		return err
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if format == "" {
		format = "pdf"
	}

	c, err := draw.NewFormattedCanvas(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("creating %v canvas: %w", format, err)
	}
	dc := draw.New(c)
	hp.Draw(draw.Crop(dc, 0, -opts.ColorBarWidth, 0, 0))
	bp.Draw(draw.Crop(dc, opts.Width-opts.ColorBarWidth, 0, 0, 0))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %v: %w", filename, err)
	}
	defer file.Close()

	if _, err := c.WriteTo(file); err != nil {
		return fmt.Errorf("writing %v: %w", filename, err)
	}
	return file.Close()
}

func annotations(g *Grid, f font.Font) (*plotter.Labels, error) {
	var xyl plotter.XYLabels

	rows := g.Rows()
	for r, row := range g.Labels {
		for c, l := range row {
			if l == "" {
				continue
			}
			xyl.XYs = append(xyl.XYs, plotter.XY{X: float64(c), Y: float64(rows - 1 - r)})
			xyl.Labels = append(xyl.Labels, l)
		}
	}
	if len(xyl.Labels) == 0 {
		return nil, nil
	}

	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, fmt.Errorf("creating cell labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		labels.TextStyle[i].Font.Typeface = f.Typeface
		labels.TextStyle[i].Font.Variant = f.Variant
	}
	return labels, nil
}

func columnTicks(width int) []plot.Tick {
	ticks := make([]plot.Tick, width)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(i)}
	}
	return ticks
}

func rowTicks(g *Grid) []plot.Tick {
	rows := g.Rows()
	ticks := make([]plot.Tick, rows)
	for i, l := range g.RowLabels() {
		ticks[i] = plot.Tick{Value: float64(rows - 1 - i), Label: l}
	}
	return ticks
}

func setFont(p *plot.Plot, f font.Font) {
	styles := []*text.Style{
		&p.Title.TextStyle,
		&p.X.Label.TextStyle,
		&p.Y.Label.TextStyle,
		&p.X.Tick.Label,
		&p.Y.Tick.Label,
	}
	for _, s := range styles {
		s.Font.Typeface = f.Typeface
		s.Font.Variant = f.Variant
	}
}
