package frame

import (
	"fmt"
	"image/color"
)

// Color is an opaque RGB pixel value.
type Color struct {
	R, G, B uint8
}

var (
	White  = Color{0xff, 0xff, 0xff}
	Black  = Color{0x00, 0x00, 0x00}
	Red    = Color{0xff, 0x00, 0x00}
	Green  = Color{0x00, 0xff, 0x00}
	Blue   = Color{0x00, 0x00, 0xff}
	Yellow = Color{0xff, 0xff, 0x00}
)

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// FromColor converts any color.Color, dropping alpha after un-premultiplying.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// RGBA implements color.Color. Alpha is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the colour as an opaque color.RGBA value.
func (c Color) NRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex formats the colour as #RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }
