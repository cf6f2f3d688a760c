package layout

import (
	"fmt"
	"image"
)

// SwatchCount is the number of colour swatches in the picker strip.
const SwatchCount = 5

// Layout holds the fixed geometry of the paint window in logical pixels.
// It is built once at startup and passed by value to every component that
// needs layout maths.
type Layout struct {
	CanvasWidth  int
	CanvasHeight int
	Border       int
	ButtonSize   int
}

// Default returns the stock 200x100 canvas with a one pixel border and 5px
// swatches.
func Default() Layout {
	return Layout{
		CanvasWidth:  200,
		CanvasHeight: 100,
		Border:       1,
		ButtonSize:   5,
	}
}

// Width is the width of the logical frame buffer.
func (l Layout) Width() int { return l.CanvasWidth + 2*l.Border }

// Height is the height of the logical frame buffer: canvas, picker strip and
// the borders around them.
func (l Layout) Height() int { return l.CanvasHeight + 3*l.Border + l.ButtonSize }

// Size returns the frame buffer size.
func (l Layout) Size() image.Point { return image.Pt(l.Width(), l.Height()) }

// Bounds returns the frame buffer rectangle anchored at the origin.
func (l Layout) Bounds() image.Rectangle { return image.Rectangle{Max: l.Size()} }

// FrameBytes is the length of an RGBA frame for this layout.
func (l Layout) FrameBytes() int { return l.Width() * l.Height() * 4 }

// CanvasRect is the screen rectangle covered by the canvas.
func (l Layout) CanvasRect() image.Rectangle {
	return image.Rect(l.Border, l.Border, l.Border+l.CanvasWidth, l.Border+l.CanvasHeight)
}

// PickerRect is the screen rectangle of the colour picker strip.
func (l Layout) PickerRect() image.Rectangle {
	y := 2*l.Border + l.CanvasHeight
	return image.Rect(l.Border, y, l.Border+l.CanvasWidth, y+l.ButtonSize)
}

// Validate reports whether the layout can hold a canvas and the full
// swatch strip.
func (l Layout) Validate() error {
	if l.CanvasWidth <= 0 || l.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", l.CanvasWidth, l.CanvasHeight)
	}
	if l.Border < 0 {
		return fmt.Errorf("border %d must not be negative", l.Border)
	}
	if l.ButtonSize <= 0 {
		return fmt.Errorf("button size %d must be positive", l.ButtonSize)
	}
	need := SwatchCount*(l.ButtonSize+l.Border) - l.Border
	if l.CanvasWidth < need {
		return fmt.Errorf("canvas width %d too narrow for %d swatches (need %d)", l.CanvasWidth, SwatchCount, need)
	}
	return nil
}
