package viewer

import (
	"image/color"
	"math"
)

// SegmentColor colors segment i of n: the first one green, the last one red.
func SegmentColor(i, n int) color.RGBA {
	if n <= 1 {
		return GreenToRedHSV(0)
	}

	return GreenToRedHSV(float64(i) / float64(n-1))
}

// GreenToRedHSV maps v (clamped to [0, 1]) onto the hue range 120 (green) .. 0 (red).
func GreenToRedHSV(v float64) color.RGBA {
	v = math.Max(0, math.Min(1, v))

	return HSVtoRGB((1-v)*120, 1, 1)
}

// HSVtoRGB maps h in [0, 360) and s, v in [0, 1] to an opaque color.
// Hues out of range give black.
func HSVtoRGB(h, s, v float64) color.RGBA {
	if h < 0 || h >= 360 {
		return color.RGBA{A: 255}
	}

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	// sextant of the color wheel -> (r, g, b) before adding m
	sextants := [6][3]float64{
		{c, x, 0},
		{x, c, 0},
		{0, c, x},
		{0, x, c},
		{x, 0, c},
		{c, 0, x},
	}
	rgb := sextants[int(h/60)]

	return color.RGBA{
		R: uint8((rgb[0] + m) * 255),
		G: uint8((rgb[1] + m) * 255),
		B: uint8((rgb[2] + m) * 255),
		A: 255,
	}
}
