package frame

import "image"

// Region decides which absolute pixels a View may write.
type Region interface {
	Contains(x, y int) bool
}

// Rect is an axis-aligned region. Min is inclusive and Max exclusive, as with
// image.Rectangle.
type Rect image.Rectangle

// RectAt builds a Rect from its top-left corner and size.
func RectAt(x, y, w, h int) Rect {
	return Rect(image.Rect(x, y, x+w, y+h))
}

func (r Rect) Contains(x, y int) bool {
	return image.Pt(x, y).In(image.Rectangle(r))
}

// Exclude accepts pixels inside Outer that are not inside Inner.
type Exclude struct {
	Outer Region
	Inner Region
}

func (e Exclude) Contains(x, y int) bool {
	if e.Outer == nil || !e.Outer.Contains(x, y) {
		return false
	}
	return e.Inner == nil || !e.Inner.Contains(x, y)
}

// RegionFunc adapts a predicate to a Region. The function must be pure: it is
// called once per pixel write and must not keep state between calls.
type RegionFunc func(x, y int) bool

func (f RegionFunc) Contains(x, y int) bool { return f(x, y) }
