package tools

import (
	"image"

	"github.com/example/pixpaint/internal/canvas"
	"github.com/example/pixpaint/internal/frame"
	"github.com/example/pixpaint/internal/raster"
)

// LineColor is the fixed straight line colour.
var LineColor = frame.Yellow

// Line drags a straight segment from the press point.
type Line struct {
	origin  image.Point
	current image.Point
	down    bool
}

func NewLine() *Line { return &Line{} }

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Press(p image.Point, _ *canvas.Canvas) {
	l.origin, l.current, l.down = p, p, true
}

func (l *Line) Hold(_, curr image.Point, _ *canvas.Canvas) {
	l.current = curr
}

func (l *Line) Release(p image.Point, c *canvas.Canvas) {
	l.current = p
	l.down = false
	c.Plot(raster.PlotLine(l.origin, l.current), LineColor)
}

func (l *Line) Render(dst frame.Target) {
	if !l.down {
		return
	}
	plot(dst, raster.PlotLine(l.origin, l.current), LineColor)
}
