package appstate

import (
	"image"

	"golang.org/x/mobile/event/mouse"
)

// Pointer receives translated pointer events in frame coordinates.
type Pointer interface {
	Press(p image.Point)
	Hold(prev, curr image.Point)
	Release(p image.Point)
}

// Input turns window mouse events into Press/Hold/Release calls on a
// Pointer. Only the left button draws.
type Input struct {
	// Placed is where the frame sits in the window and Scale how many window
	// pixels make up one frame pixel.
	Placed image.Rectangle
	Scale  int

	down bool
	last image.Point
}

// Down reports whether the left button is held.
func (in *Input) Down() bool { return in.down }

// Cancel forgets a press in progress without sending a release.
func (in *Input) Cancel() { in.down = false }

// ToFrame maps a window position to frame coordinates, clamped into the
// frame. The boolean reports whether the position was inside the frame
// before clamping.
func (in *Input) ToFrame(x, y float32) (image.Point, bool) {
	scale := in.Scale
	if scale < 1 {
		scale = 1
	}
	wx, wy := int(x), int(y)
	inside := image.Pt(wx, wy).In(in.Placed)
	size := in.Placed.Size().Div(scale)
	p := image.Pt(floorDiv(wx-in.Placed.Min.X, scale), floorDiv(wy-in.Placed.Min.Y, scale))
	p.X = clamp(p.X, 0, size.X-1)
	p.Y = clamp(p.Y, 0, size.Y-1)
	return p, inside
}

// Handle forwards e to dst and reports whether the frame needs repainting.
// Presses outside the frame are ignored; drags and releases are clamped to
// its edge.
func (in *Input) Handle(e mouse.Event, dst Pointer) bool {
	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return false
		}
		p, inside := in.ToFrame(e.X, e.Y)
		if !inside {
			return false
		}
		in.down = true
		in.last = p
		dst.Press(p)
		return true
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft || !in.down {
			return false
		}
		p, _ := in.ToFrame(e.X, e.Y)
		if p != in.last {
			dst.Hold(in.last, p)
		}
		in.down = false
		dst.Release(p)
		return true
	case mouse.DirNone:
		if !in.down {
			return false
		}
		p, _ := in.ToFrame(e.X, e.Y)
		if p == in.last {
			return false
		}
		dst.Hold(in.last, p)
		in.last = p
		return true
	}
	return false
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
