// Package picker is the strip of colour swatches below the canvas.
package picker

import (
	"image"

	"github.com/example/pixpaint/internal/frame"
	"github.com/example/pixpaint/internal/layout"
)

// Swatch is one clickable colour square.
type Swatch struct {
	Name  string
	Color frame.Color
	Rect  image.Rectangle
}

var palette = []struct {
	name  string
	color frame.Color
}{
	{"red", frame.Red},
	{"black", frame.Black},
	{"green", frame.Green},
	{"blue", frame.Blue},
	{"white", frame.White},
}

// Picker holds the swatches in left to right order.
type Picker struct {
	swatches []Swatch
}

// New lays the swatches out under the canvas described by l.
func New(l layout.Layout) *Picker {
	p := &Picker{}
	y := l.CanvasHeight + 2*l.Border
	for i, c := range palette {
		x := (l.ButtonSize+l.Border)*i + l.Border
		p.swatches = append(p.swatches, Swatch{
			Name:  c.name,
			Color: c.color,
			Rect:  image.Rect(x, y, x+l.ButtonSize, y+l.ButtonSize),
		})
	}
	return p
}

// Pick returns the colour of the first swatch containing pt.
func (p *Picker) Pick(pt image.Point) (frame.Color, bool) {
	for _, s := range p.swatches {
		if pt.In(s.Rect) {
			return s.Color, true
		}
	}
	return frame.Color{}, false
}

// Render fills each swatch square.
func (p *Picker) Render(dst frame.Target) {
	for _, s := range p.swatches {
		for y := s.Rect.Min.Y; y < s.Rect.Max.Y; y++ {
			for x := s.Rect.Min.X; x < s.Rect.Max.X; x++ {
				dst.PutPixel(x, y, s.Color)
			}
		}
	}
}

// Swatches returns a copy of the swatch list.
func (p *Picker) Swatches() []Swatch {
	return append([]Swatch(nil), p.swatches...)
}

// Name returns the swatch name for c, or its hex form when c is not in the
// palette.
func Name(c frame.Color) string {
	for _, e := range palette {
		if e.color == c {
			return e.name
		}
	}
	return c.Hex()
}
