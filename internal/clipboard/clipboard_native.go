//go:build ((linux || freebsd || openbsd || netbsd || dragonfly || darwin) && cgo) || windows

package clipboard

import (
	"fmt"
	"runtime"

	"golang.design/x/clipboard"
)

type nativeBackend struct{}

func newBackend() (backend, error) {
	if runtime.GOOS != "darwin" && runtime.GOOS != "windows" && !hasDisplay() {
		return nil, errNoDisplay
	}
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard init: %w", err)
	}
	return nativeBackend{}, nil
}

func (nativeBackend) writePNG(data []byte) error {
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

func (nativeBackend) readPNG() ([]byte, error) {
	return clipboard.Read(clipboard.FmtImage), nil
}
