// Package canvas holds the committed drawing: a fixed grid of colours that
// tools write into and the window renders every frame.
package canvas

import (
	"image"
	"image/color"

	"github.com/example/pixpaint/internal/frame"
	"github.com/example/pixpaint/internal/layout"
)

// Canvas is a CanvasHeight x CanvasWidth grid of colours addressed in screen
// coordinates. The border offset from the layout is applied on every access.
type Canvas struct {
	layout layout.Layout
	cells  [][]frame.Color
}

// New returns a white canvas sized for l.
func New(l layout.Layout) *Canvas {
	c := &Canvas{layout: l}
	c.cells = make([][]frame.Color, l.CanvasHeight)
	for row := range c.cells {
		c.cells[row] = make([]frame.Color, l.CanvasWidth)
	}
	c.Clear()
	return c
}

// Layout returns the layout the canvas was built for.
func (c *Canvas) Layout() layout.Layout { return c.layout }

func (c *Canvas) local(x, y int) (col, row int, ok bool) {
	col = x - c.layout.Border
	row = y - c.layout.Border
	if col < 0 || row < 0 || row >= len(c.cells) || col >= len(c.cells[row]) {
		return 0, 0, false
	}
	return col, row, true
}

// SetPixel commits colour at screen position (x, y). Positions outside the
// grid are ignored.
func (c *Canvas) SetPixel(x, y int, colour frame.Color) {
	col, row, ok := c.local(x, y)
	if !ok {
		return
	}
	c.cells[row][col] = colour
}

// Pixel returns the colour at screen position (x, y), or false when the
// position is outside the grid.
func (c *Canvas) Pixel(x, y int) (frame.Color, bool) {
	col, row, ok := c.local(x, y)
	if !ok {
		return frame.Color{}, false
	}
	return c.cells[row][col], true
}

// Plot commits every point in pts.
func (c *Canvas) Plot(pts []image.Point, colour frame.Color) {
	for _, p := range pts {
		c.SetPixel(p.X, p.Y, colour)
	}
}

// Render writes every cell to dst at its screen position.
func (c *Canvas) Render(dst frame.Target) {
	b := c.layout.Border
	for row, cells := range c.cells {
		for col, colour := range cells {
			dst.PutPixel(col+b, row+b, colour)
		}
	}
}

// Clear resets every cell to white.
func (c *Canvas) Clear() {
	for _, cells := range c.cells {
		for col := range cells {
			cells[col] = frame.White
		}
	}
}

// Image returns a snapshot of the grid with its origin at (0, 0).
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.layout.CanvasWidth, c.layout.CanvasHeight))
	for row, cells := range c.cells {
		for col, colour := range cells {
			img.SetRGBA(col, row, colour.NRGBA())
		}
	}
	return img
}

// Paste copies img into the grid starting at the top-left cell. Pixels past
// the grid edge are dropped and transparent pixels leave the cell untouched.
func (c *Canvas) Paste(img image.Image) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	for row := 0; row < len(c.cells) && row < bounds.Dy(); row++ {
		for col := 0; col < len(c.cells[row]) && col < bounds.Dx(); col++ {
			px := color.NRGBAModel.Convert(img.At(bounds.Min.X+col, bounds.Min.Y+row)).(color.NRGBA)
			if px.A == 0 {
				continue
			}
			c.cells[row][col] = frame.RGB(px.R, px.G, px.B)
		}
	}
}
