package tools

import (
	"image"

	"github.com/example/pixpaint/internal/canvas"
	"github.com/example/pixpaint/internal/frame"
	"github.com/example/pixpaint/internal/raster"
)

// PencilColor is the fixed pencil stroke colour.
var PencilColor = frame.Red

// Pencil draws freehand strokes straight into the canvas.
type Pencil struct{}

func NewPencil() *Pencil { return &Pencil{} }

func (*Pencil) Press(image.Point, *canvas.Canvas)   {}
func (*Pencil) Release(image.Point, *canvas.Canvas) {}
func (*Pencil) Render(frame.Target)                 {}
func (*Pencil) Kind() Kind                          { return KindPencil }

func (*Pencil) Hold(prev, curr image.Point, c *canvas.Canvas) {
	c.Plot(raster.PlotLine(prev, curr), PencilColor)
}
