// Package tools implements the drawing tools. Each tool is a small
// press/hold/release state machine that previews into the frame and commits
// into the canvas.
package tools

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/example/pixpaint/internal/canvas"
	"github.com/example/pixpaint/internal/frame"
)

// Kind identifies a tool variant.
type Kind int

const (
	KindPencil Kind = iota
	KindRectangle
	KindCircle
	KindLine
	KindFill
)

// DefaultKind is the tool active when the window opens.
const DefaultKind = KindRectangle

var kindNames = [...]string{
	KindPencil:    "pencil",
	KindRectangle: "rectangle",
	KindCircle:    "circle",
	KindLine:      "line",
	KindFill:      "fill",
}

// ErrUnknownTool is returned by ParseKind for names it does not recognise.
var ErrUnknownTool = errors.New("unknown tool")

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every tool in display order.
func Kinds() []Kind {
	return []Kind{KindPencil, KindRectangle, KindCircle, KindLine, KindFill}
}

// ParseKind looks a tool up by name. A few short aliases are accepted.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pencil", "pen", "draw":
		return KindPencil, nil
	case "rectangle", "rect", "box":
		return KindRectangle, nil
	case "circle":
		return KindCircle, nil
	case "line":
		return KindLine, nil
	case "fill", "floodfill", "bucket":
		return KindFill, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Tool receives pointer events in screen coordinates.
type Tool interface {
	Press(p image.Point, c *canvas.Canvas)
	Hold(prev, curr image.Point, c *canvas.Canvas)
	Release(p image.Point, c *canvas.Canvas)
	// Render draws the in-progress preview, if any.
	Render(dst frame.Target)
	Kind() Kind
}

// Outliner is implemented by tools whose colour follows the picker.
type Outliner interface {
	SetOutlineColor(c frame.Color)
	OutlineColor() frame.Color
}

// New returns a fresh tool of kind k in its idle state.
func New(k Kind) Tool {
	switch k {
	case KindPencil:
		return NewPencil()
	case KindCircle:
		return NewCircle()
	case KindLine:
		return NewLine()
	case KindFill:
		return NewFill()
	default:
		return NewRectangle()
	}
}

func plot(dst frame.Target, pts []image.Point, c frame.Color) {
	for _, p := range pts {
		dst.PutPixel(p.X, p.Y, c)
	}
}
