//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package display

import (
	"errors"
	"image"
)

// ScreenSize is not implemented off X11.
func ScreenSize() (image.Point, error) {
	return image.Point{}, errors.New("screen size query is not supported on this platform")
}
