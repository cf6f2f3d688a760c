//go:build !(linux || freebsd || openbsd || netbsd || dragonfly || windows) && !(darwin && cgo)

package clipboard

import "errors"

func newBackend() (backend, error) {
	return nil, errors.New("clipboard image operations are not supported on this platform")
}
