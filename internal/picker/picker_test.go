package picker

import (
	"image"
	"testing"

	"github.com/example/pixpaint/internal/frame"
	"github.com/example/pixpaint/internal/layout"
)

func TestLayout(t *testing.T) {
	p := New(layout.Default())
	sw := p.Swatches()
	if len(sw) != layout.SwatchCount {
		t.Fatalf("expected %d swatches, got %d", layout.SwatchCount, len(sw))
	}
	want := []image.Rectangle{
		image.Rect(1, 102, 6, 107),
		image.Rect(7, 102, 12, 107),
		image.Rect(13, 102, 18, 107),
		image.Rect(19, 102, 24, 107),
		image.Rect(25, 102, 30, 107),
	}
	for i, s := range sw {
		if s.Rect != want[i] {
			t.Errorf("swatch %d at %v, want %v", i, s.Rect, want[i])
		}
		if !s.Rect.In(layout.Default().PickerRect()) {
			t.Errorf("swatch %d outside the picker strip", i)
		}
	}
}

func TestPick(t *testing.T) {
	p := New(layout.Default())
	cases := []struct {
		pt   image.Point
		want frame.Color
		ok   bool
	}{
		{image.Pt(1, 102), frame.Red, true},
		{image.Pt(5, 106), frame.Red, true},
		{image.Pt(6, 104), frame.Color{}, false},
		{image.Pt(7, 104), frame.Black, true},
		{image.Pt(15, 104), frame.Green, true},
		{image.Pt(20, 103), frame.Blue, true},
		{image.Pt(29, 106), frame.White, true},
		{image.Pt(30, 104), frame.Color{}, false},
		{image.Pt(3, 50), frame.Color{}, false},
	}
	for _, c := range cases {
		got, ok := p.Pick(c.pt)
		if ok != c.ok || got != c.want {
			t.Errorf("Pick(%v) = %v %v, want %v %v", c.pt, got, ok, c.want, c.ok)
		}
	}
}

func TestRenderStaysInSwatches(t *testing.T) {
	p := New(layout.Default())
	var count int
	p.Render(targetFunc(func(x, y int, c frame.Color) {
		count++
		got, ok := p.Pick(image.Pt(x, y))
		if !ok || got != c {
			t.Fatalf("pixel (%d,%d) %v outside its swatch", x, y, c)
		}
	}))
	if count != 5*5*5 {
		t.Fatalf("rendered %d pixels", count)
	}
}

func TestName(t *testing.T) {
	if Name(frame.Green) != "green" {
		t.Error("palette colour should be named")
	}
	if Name(frame.RGB(1, 2, 3)) != "#010203" {
		t.Error("other colours fall back to hex")
	}
}

type targetFunc func(x, y int, c frame.Color)

func (f targetFunc) PutPixel(x, y int, c frame.Color) { f(x, y, c) }
