// Package heatmap turns per block cost differentials into colors and into a
// fixed width grid that is rendered as a diverging heat map.
package heatmap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Saturation holds the cost differentials at which the PIM friendly and the
// CPU friendly colors saturate. Both must be greater than 1.
type Saturation struct {
	PIMMax float64
	CPUMax float64
}

// DefaultSaturation saturates at a differential of 1e8 in both directions.
var DefaultSaturation = Saturation{PIMMax: 1e8, CPUMax: 1e8}

// Validate checks that both saturation points are greater than 1.
func (s Saturation) Validate() error {
	if !(s.PIMMax > 1) || !(s.CPUMax > 1) {
		return errors.New("saturation points must be greater than 1")
	}
	return nil
}

// Color is an 8 bit RGB color.
type Color struct {
	R, G, B uint8
}

// White is used for neutral blocks.
var White = Color{R: 255, G: 255, B: 255}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA returns the opaque color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Color maps a cost differential to a color. Differentials >= 1 fade from
// white to red, differentials <= -1 fade from white to green and everything
// in between is white.
func (s Saturation) Color(v float64) Color {
	switch {
	case v >= 1:
		// v >= 1 so log10(v) >= 0
		c := fade(v, s.PIMMax)
		return Color{R: 255, G: c, B: c}
	case v <= -1:
		// -v >= 1 so log10(-v) >= 0
		c := fade(-v, s.CPUMax)
		return Color{R: c, G: 255, B: c}
	default:
		return White
	}
}

// fade returns the non saturated channel for v >= 1. The intensity is capped
// at 255 before rounding up, so the result is in [0, 255].
func fade(v, saturation float64) uint8 {
	intensity := math.Min(255*math.Log10(v)/math.Log10(saturation), 255)
	return uint8(255 - int(math.Ceil(intensity)))
}

// ColorOf maps v using DefaultSaturation.
func ColorOf(v float64) Color {
	return DefaultSaturation.Color(v)
}
