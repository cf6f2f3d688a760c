//go:build linux || freebsd || openbsd || netbsd || dragonfly

package display

import (
	"fmt"
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// ScreenSize reports the pixel size of the default X11 screen.
func ScreenSize() (image.Point, error) {
	if !hasDisplay() {
		return image.Point{}, errNoDisplay
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return image.Point{}, fmt.Errorf("x11 connect: %w", err)
	}
	defer conn.Close()
	screen := xproto.Setup(conn).DefaultScreen(conn)
	return image.Pt(int(screen.WidthInPixels), int(screen.HeightInPixels)), nil
}
