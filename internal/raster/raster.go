// Package raster turns geometric primitives into the integer pixel
// coordinates that tools plot onto the canvas.
package raster

import (
	"image"
	"math"
)

// PlotLine returns the pixels of the segment from -> to using a DDA walk
// along the major axis. Coordinates on the minor axis are rounded half away
// from zero. When from == to the single point is returned.
func PlotLine(from, to image.Point) []image.Point {
	if from == to {
		return []image.Point{from}
	}
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)

	if math.Abs(dx) > math.Abs(dy) || dy == 0 {
		slope := dy / dx
		lo, hi := order(from.X, to.X)
		pts := make([]image.Point, 0, hi-lo+1)
		for x := lo; x <= hi; x++ {
			y := float64(from.Y) + slope*float64(x-from.X)
			pts = append(pts, image.Pt(x, int(math.Round(y))))
		}
		return pts
	}

	slope := dx / dy
	lo, hi := order(from.Y, to.Y)
	pts := make([]image.Point, 0, hi-lo+1)
	for y := lo; y <= hi; y++ {
		x := float64(from.X) + slope*float64(y-from.Y)
		pts = append(pts, image.Pt(int(math.Round(x)), y))
	}
	return pts
}

// CirclePoints returns the outline of a circle centred on origin. Each step
// of the first octant is mirrored into the other seven, so points may repeat
// where octants meet. A radius of zero or less yields nothing.
func CirclePoints(origin image.Point, radius float64) []image.Point {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil
	}
	end := int(math.Ceil(radius / math.Sqrt2))
	pts := make([]image.Point, 0, 8*(end+1))
	for x := 0; x <= end; x++ {
		fx := float64(x) / radius
		y := int(math.Round(radius * math.Sqrt(math.Max(0, 1-fx*fx))))
		pts = append(pts,
			image.Pt(origin.X+x, origin.Y+y),
			image.Pt(origin.X+x, origin.Y-y),
			image.Pt(origin.X-x, origin.Y+y),
			image.Pt(origin.X-x, origin.Y-y),
			image.Pt(origin.X+y, origin.Y+x),
			image.Pt(origin.X+y, origin.Y-x),
			image.Pt(origin.X-y, origin.Y+x),
			image.Pt(origin.X-y, origin.Y-x),
		)
	}
	return pts
}

// Radius is the Euclidean distance between two points.
func Radius(a, b image.Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// RectOutline returns the hollow box spanned by corners a and b. Both corners
// are inclusive and may be given in any order.
func RectOutline(a, b image.Point) []image.Point {
	minX, maxX := order(a.X, b.X)
	minY, maxY := order(a.Y, b.Y)
	pts := make([]image.Point, 0, 2*(maxX-minX+1)+2*(maxY-minY+1))
	for x := minX; x <= maxX; x++ {
		pts = append(pts, image.Pt(x, minY), image.Pt(x, maxY))
	}
	for y := minY; y <= maxY; y++ {
		pts = append(pts, image.Pt(minX, y), image.Pt(maxX, y))
	}
	return pts
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
