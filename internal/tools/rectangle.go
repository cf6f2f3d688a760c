package tools

import (
	"image"

	"github.com/example/pixpaint/internal/canvas"
	"github.com/example/pixpaint/internal/frame"
	"github.com/example/pixpaint/internal/raster"
)

// Rectangle drags out a hollow box from the press point.
type Rectangle struct {
	origin  image.Point
	current image.Point
	down    bool
	outline frame.Color
}

func NewRectangle() *Rectangle { return &Rectangle{outline: frame.Black} }

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) SetOutlineColor(c frame.Color) { r.outline = c }
func (r *Rectangle) OutlineColor() frame.Color     { return r.outline }

func (r *Rectangle) Press(p image.Point, _ *canvas.Canvas) {
	r.origin, r.current, r.down = p, p, true
}

func (r *Rectangle) Hold(_, curr image.Point, _ *canvas.Canvas) {
	r.current = curr
}

func (r *Rectangle) Release(p image.Point, c *canvas.Canvas) {
	r.current = p
	r.down = false
	c.Plot(raster.RectOutline(r.origin, r.current), r.outline)
}

func (r *Rectangle) Render(dst frame.Target) {
	if !r.down {
		return
	}
	plot(dst, raster.RectOutline(r.origin, r.current), r.outline)
}
