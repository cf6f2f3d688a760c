// Package render puts the logical frame and the status bar onto the
// window buffer.
package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/pixpaint/internal/theme"
)

// Placement returns the largest whole-number scale at which a frame of the
// given size fits inside area, and the rectangle it occupies when centred.
// The scale is never below 1.
func Placement(frame image.Point, area image.Rectangle) (image.Rectangle, int) {
	scale := 1
	if frame.X > 0 && frame.Y > 0 {
		scale = min(area.Dx()/frame.X, area.Dy()/frame.Y)
	}
	if scale < 1 {
		scale = 1
	}
	size := frame.Mul(scale)
	off := image.Pt((area.Dx()-size.X)/2, (area.Dy()-size.Y)/2)
	if off.X < 0 {
		off.X = 0
	}
	if off.Y < 0 {
		off.Y = 0
	}
	origin := area.Min.Add(off)
	return image.Rectangle{Min: origin, Max: origin.Add(size)}, scale
}

// Presenter draws an upscaled frame onto a window buffer.
type Presenter struct {
	Theme  *theme.Theme
	Shadow ShadowOptions

	shadows shadowCache
}

// NewPresenter returns a Presenter using t, or the default theme when t is
// nil.
func NewPresenter(t *theme.Theme) *Presenter {
	if t == nil {
		t = theme.Default()
	}
	return &Presenter{Theme: t, Shadow: DefaultShadowOptions()}
}

// Present fills area with the backdrop and draws frame into it with
// nearest-neighbour scaling. It returns where the frame landed and at which
// scale so pointer positions can be mapped back.
func (p *Presenter) Present(dst *image.RGBA, area image.Rectangle, frame *image.RGBA) (image.Rectangle, int) {
	draw.Draw(dst, area, image.NewUniform(p.Theme.Backdrop), image.Point{}, draw.Src)
	placed, scale := Placement(frame.Bounds().Size(), area)
	if placed.Dx() < area.Dx() || placed.Dy() < area.Dy() {
		p.shadows.draw(dst, area, placed, p.Shadow)
	}
	xdraw.NearestNeighbor.Scale(dst, placed, frame, frame.Bounds(), draw.Src, nil)
	return placed, scale
}
