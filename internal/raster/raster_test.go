package raster

import (
	"image"
	"math"
	"testing"
)

func contains(pts []image.Point, p image.Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

func TestPlotLineSinglePoint(t *testing.T) {
	pts := PlotLine(image.Pt(3, 4), image.Pt(3, 4))
	if len(pts) != 1 || pts[0] != image.Pt(3, 4) {
		t.Fatalf("got %v", pts)
	}
}

func TestPlotLineEndpoints(t *testing.T) {
	cases := []struct{ from, to image.Point }{
		{image.Pt(0, 0), image.Pt(10, 0)},
		{image.Pt(0, 0), image.Pt(0, 10)},
		{image.Pt(10, 3), image.Pt(2, 7)},
		{image.Pt(5, 20), image.Pt(8, 1)},
		{image.Pt(0, 0), image.Pt(6, 6)},
		{image.Pt(-4, 2), image.Pt(3, -5)},
	}
	for _, c := range cases {
		pts := PlotLine(c.from, c.to)
		if !contains(pts, c.from) || !contains(pts, c.to) {
			t.Errorf("line %v->%v misses an endpoint: %v", c.from, c.to, pts)
		}
		dx := c.to.X - c.from.X
		dy := c.to.Y - c.from.Y
		major := max(abs(dx), abs(dy))
		if len(pts) != major+1 {
			t.Errorf("line %v->%v has %d points, want %d", c.from, c.to, len(pts), major+1)
		}
	}
}

func TestPlotLineContiguous(t *testing.T) {
	pts := PlotLine(image.Pt(1, 1), image.Pt(9, 4))
	for i := 1; i < len(pts); i++ {
		if pts[i].X != pts[i-1].X+1 {
			t.Fatalf("x-major line not ascending at %d: %v", i, pts)
		}
		if d := pts[i].Y - pts[i-1].Y; d < 0 || d > 1 {
			t.Fatalf("gap at %d: %v", i, pts)
		}
	}
}

func TestPlotLineRounding(t *testing.T) {
	// slope 0.5: y at x=1 is 0.5 and rounds away from zero to 1.
	pts := PlotLine(image.Pt(0, 0), image.Pt(2, 1))
	want := []image.Point{{0, 0}, {1, 1}, {2, 1}}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("got %v want %v", pts, want)
		}
	}
}

func TestCirclePointsSymmetry(t *testing.T) {
	o := image.Pt(50, 50)
	for _, r := range []float64{1, 3, 5.5, 17} {
		pts := CirclePoints(o, r)
		if len(pts) == 0 {
			t.Fatalf("radius %v produced no points", r)
		}
		for _, p := range pts {
			dx, dy := p.X-o.X, p.Y-o.Y
			for _, m := range []image.Point{
				{o.X - dx, o.Y + dy}, {o.X + dx, o.Y - dy},
				{o.X + dy, o.Y + dx}, {o.X - dy, o.Y - dx},
			} {
				if !contains(pts, m) {
					t.Fatalf("radius %v: %v has no mirror %v", r, p, m)
				}
			}
			if d := math.Hypot(float64(dx), float64(dy)); math.Abs(d-r) > 1 {
				t.Fatalf("radius %v: point %v at distance %v", r, p, d)
			}
		}
	}
}

func TestCirclePointsZeroRadius(t *testing.T) {
	if pts := CirclePoints(image.Pt(1, 1), 0); len(pts) != 0 {
		t.Fatalf("expected nothing, got %v", pts)
	}
	if pts := CirclePoints(image.Pt(1, 1), -2); len(pts) != 0 {
		t.Fatalf("expected nothing, got %v", pts)
	}
}

func TestRectOutline(t *testing.T) {
	pts := RectOutline(image.Pt(20, 30), image.Pt(10, 10))
	set := map[image.Point]bool{}
	for _, p := range pts {
		set[p] = true
	}
	for y := 10; y <= 30; y++ {
		for x := 10; x <= 20; x++ {
			edge := x == 10 || x == 20 || y == 10 || y == 30
			if set[image.Pt(x, y)] != edge {
				t.Fatalf("(%d,%d) edge=%v plotted=%v", x, y, edge, set[image.Pt(x, y)])
			}
		}
	}
	if len(set) != 2*11+2*21-4 {
		t.Fatalf("unexpected unique point count %d", len(set))
	}
}

func TestRadius(t *testing.T) {
	if r := Radius(image.Pt(0, 0), image.Pt(3, 4)); r != 5 {
		t.Fatalf("got %v", r)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
