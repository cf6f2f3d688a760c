package appstate

import (
	"image"

	"github.com/example/pixpaint/internal/canvas"
	"github.com/example/pixpaint/internal/frame"
	"github.com/example/pixpaint/internal/layout"
	"github.com/example/pixpaint/internal/picker"
	"github.com/example/pixpaint/internal/tools"
)

// App ties the canvas, the active tool and the colour picker together. It
// is not safe for concurrent use; the event loop owns it.
type App struct {
	layout layout.Layout
	canvas *canvas.Canvas
	tool   tools.Tool
	picker *picker.Picker

	color    frame.Color
	hasColor bool
}

// AppOption configures an App at construction.
type AppOption func(*App)

// StartTool selects the tool active when the App is created.
func StartTool(k tools.Kind) AppOption {
	return func(a *App) { a.tool = tools.New(k) }
}

// StartColor preselects a picker colour.
func StartColor(c frame.Color) AppOption {
	return func(a *App) { a.color, a.hasColor = c, true }
}

// NewApp builds an App for l with a white canvas and the rectangle tool.
func NewApp(l layout.Layout, opts ...AppOption) *App {
	a := &App{
		layout: l,
		canvas: canvas.New(l),
		tool:   tools.New(tools.DefaultKind),
		picker: picker.New(l),
	}
	for _, o := range opts {
		o(a)
	}
	a.applyColor()
	return a
}

// Layout returns the geometry the App was built with.
func (a *App) Layout() layout.Layout { return a.layout }

// Canvas exposes the committed drawing.
func (a *App) Canvas() *canvas.Canvas { return a.canvas }

// Tool returns the active tool.
func (a *App) Tool() tools.Tool { return a.tool }

// Color returns the current drawing colour: the last picked colour, or the
// tool's own colour when nothing has been picked yet.
func (a *App) Color() frame.Color {
	if o, ok := a.tool.(tools.Outliner); ok {
		return o.OutlineColor()
	}
	switch a.tool.Kind() {
	case tools.KindPencil:
		return tools.PencilColor
	case tools.KindLine:
		return tools.LineColor
	}
	return a.color
}

// Press forwards to the tool first and then checks the picker, so a press
// on a swatch also reaches the tool.
func (a *App) Press(p image.Point) {
	a.tool.Press(p, a.canvas)
	if c, ok := a.picker.Pick(p); ok {
		a.SetColor(c)
	}
}

func (a *App) Hold(prev, curr image.Point) { a.tool.Hold(prev, curr, a.canvas) }

func (a *App) Release(p image.Point) { a.tool.Release(p, a.canvas) }

// SetColor remembers c and hands it to the tool when it takes colours.
func (a *App) SetColor(c frame.Color) {
	a.color, a.hasColor = c, true
	a.applyColor()
}

// SwitchTool replaces the active tool with a fresh one of kind k. Any
// interaction in progress is dropped.
func (a *App) SwitchTool(k tools.Kind) {
	a.tool = tools.New(k)
	a.applyColor()
}

func (a *App) applyColor() {
	if !a.hasColor {
		return
	}
	if o, ok := a.tool.(tools.Outliner); ok {
		o.SetOutlineColor(a.color)
	}
}

// Draw renders the canvas, the tool preview and the picker into pix, a
// tightly packed RGBA frame of the layout's size. pix is only used for the
// duration of the call. Pixels outside the canvas and picker are left alone.
func (a *App) Draw(pix []byte) {
	buf := frame.NewBuffer(pix, a.layout.Width(), a.layout.Height())

	cv := buf.Lend(frame.Rect(a.layout.CanvasRect()))
	a.canvas.Render(cv)
	a.tool.Render(cv)

	a.picker.Render(buf.Lend(frame.Rect(a.layout.PickerRect())))
}

// Clear wipes the canvas.
func (a *App) Clear() { a.canvas.Clear() }

// CanvasImage returns a copy of the canvas contents.
func (a *App) CanvasImage() *image.RGBA { return a.canvas.Image() }

// Paste copies img onto the canvas from its top-left corner.
func (a *App) Paste(img image.Image) { a.canvas.Paste(img) }
