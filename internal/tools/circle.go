package tools

import (
	"image"

	"github.com/example/pixpaint/internal/canvas"
	"github.com/example/pixpaint/internal/frame"
	"github.com/example/pixpaint/internal/raster"
)

// Circle drags out a circle centred on the press point.
type Circle struct {
	origin  image.Point
	radius  float64
	down    bool
	outline frame.Color
}

func NewCircle() *Circle { return &Circle{outline: frame.Black} }

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) SetOutlineColor(col frame.Color) { c.outline = col }
func (c *Circle) OutlineColor() frame.Color       { return c.outline }

// Down reports whether a circle is being dragged.
func (c *Circle) Down() bool { return c.down }

func (c *Circle) Press(p image.Point, _ *canvas.Canvas) {
	c.origin = p
	c.radius = 0
	c.down = true
}

func (c *Circle) Hold(_, curr image.Point, _ *canvas.Canvas) {
	c.radius = raster.Radius(c.origin, curr)
}

// Release commits the circle. Releasing on the origin keeps the drag open so
// nothing is committed.
func (c *Circle) Release(p image.Point, cv *canvas.Canvas) {
	c.radius = raster.Radius(c.origin, p)
	if c.radius == 0 {
		return
	}
	c.down = false
	cv.Plot(raster.CirclePoints(c.origin, c.radius), c.outline)
}

func (c *Circle) Render(dst frame.Target) {
	if !c.down || c.radius <= 0 {
		return
	}
	plot(dst, raster.CirclePoints(c.origin, c.radius), c.outline)
}
