package heatmap

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// divergingScale returns a red-white-blue color map over [-limit, limit].
// Negative (PIM friendly) values are red, positive (CPU friendly) values blue.
func divergingScale(limit float64) palette.ColorMap {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-limit)
	cm.SetMax(limit)
	cm.SetConvergePoint(0)
	return reversed{cm}
}

// reversed flips a color map end for end.
type reversed struct {
	palette.ColorMap
}

func (r reversed) At(v float64) (color.Color, error) {
	return r.ColorMap.At(r.Min() + r.Max() - v)
}

// Palette samples n >= 2 evenly spaced colors from r.
func (r reversed) Palette(n int) palette.Palette {
	lo, hi := r.Min(), r.Max()
	delta := (hi - lo) / float64(n-1)

	cs := make(colors, n)
	for i := range cs {
		c, err := r.At(math.Min(lo+float64(i)*delta, hi))
		if err != nil {
			c = color.Transparent
		}
		cs[i] = c
	}
	return cs
}

type colors []color.Color

func (c colors) Colors() []color.Color {
	return c
}
