package tools

import (
	"image"

	"github.com/example/pixpaint/internal/canvas"
	"github.com/example/pixpaint/internal/frame"
)

// Fill flood fills the 4-connected area under the press point.
type Fill struct {
	color frame.Color
}

func NewFill() *Fill { return &Fill{color: frame.Black} }

func (f *Fill) Kind() Kind { return KindFill }

func (f *Fill) SetOutlineColor(c frame.Color) { f.color = c }
func (f *Fill) OutlineColor() frame.Color     { return f.color }

func (f *Fill) Press(p image.Point, c *canvas.Canvas) { FloodFill(c, p, f.color) }

func (*Fill) Hold(image.Point, image.Point, *canvas.Canvas) {}
func (*Fill) Release(image.Point, *canvas.Canvas)           {}
func (*Fill) Render(frame.Target)                           {}

// FloodFill replaces the 4-connected run of start's colour with fill.
// Neighbours off the canvas are treated as absent. Starting off the canvas
// does nothing.
func FloodFill(c *canvas.Canvas, start image.Point, fill frame.Color) {
	target, ok := c.Pixel(start.X, start.Y)
	if !ok {
		return
	}
	visited := map[image.Point]struct{}{}
	stack := []image.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[p]; seen {
			continue
		}
		visited[p] = struct{}{}
		col, ok := c.Pixel(p.X, p.Y)
		if !ok || col != target {
			continue
		}
		c.SetPixel(p.X, p.Y, fill)
		for _, n := range [...]image.Point{
			{p.X, p.Y - 1}, {p.X, p.Y + 1}, {p.X - 1, p.Y}, {p.X + 1, p.Y},
		} {
			if _, seen := visited[n]; !seen {
				stack = append(stack, n)
			}
		}
	}
}
