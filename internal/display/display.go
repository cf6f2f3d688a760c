// Package display inspects the host screen so the window can pick a pixel
// scale that fits.
package display

import (
	"errors"
	"image"
	"os"
)

// DefaultScale is used when the screen size cannot be determined.
const DefaultScale = 4

// MaxScale caps the automatic scale on very large screens.
const MaxScale = 12

var errNoDisplay = errors.New("DISPLAY is not set")

// screenSizeFn is replaced in tests.
var screenSizeFn = ScreenSize

// FitScale returns the largest integer scale at which a frame of the given
// logical size, plus extra rows of chrome, covers no more than three
// quarters of the screen. It never returns less than 1. When the screen
// cannot be queried DefaultScale is returned together with the error.
func FitScale(frame image.Point, chrome int) (int, error) {
	screen, err := screenSizeFn()
	if err != nil {
		return DefaultScale, err
	}
	return scaleFor(frame, chrome, screen), nil
}

func scaleFor(frame image.Point, chrome int, screen image.Point) int {
	if frame.X <= 0 || frame.Y <= 0 {
		return 1
	}
	availW := screen.X * 3 / 4
	availH := screen.Y*3/4 - chrome
	s := min(availW/frame.X, availH/frame.Y)
	if s > MaxScale {
		s = MaxScale
	}
	if s < 1 {
		s = 1
	}
	return s
}

func hasDisplay() bool { return os.Getenv("DISPLAY") != "" }
