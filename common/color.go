package common

import (
	"image/color"
	"math"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	ColorRed   = Color{1, 0, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// LerpColor interpolates every channel, alpha included.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
		A: Lerp(a.A, b.A, t),
	}
}

// ColorFrom converts any image/color value.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// NRGBA quantizes c to 8 bits per channel.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Over composites c over an opaque background and returns 8-bit channels.
func (c Color) Over(bg Color) (r, g, b uint8) {
	a := Clamp01(c.A)
	return to8(Lerp(bg.R, c.R, a)), to8(Lerp(bg.G, c.G, a)), to8(Lerp(bg.B, c.B, a))
}

func to8(v float64) uint8 {
	return uint8(math.Round(Clamp01(v) * 255))
}
