package layout

import (
	"image"
	"testing"
)

func TestDefaultGeometry(t *testing.T) {
	l := Default()
	if l.Width() != 202 || l.Height() != 108 {
		t.Fatalf("unexpected frame size %dx%d", l.Width(), l.Height())
	}
	if got, want := l.CanvasRect(), image.Rect(1, 1, 201, 101); got != want {
		t.Errorf("canvas rect %v, want %v", got, want)
	}
	if got, want := l.PickerRect(), image.Rect(1, 102, 201, 107); got != want {
		t.Errorf("picker rect %v, want %v", got, want)
	}
	if l.CanvasRect().Overlaps(l.PickerRect()) {
		t.Error("canvas and picker regions overlap")
	}
	if l.FrameBytes() != 202*108*4 {
		t.Errorf("unexpected frame bytes %d", l.FrameBytes())
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("default layout invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	bad := []Layout{
		{CanvasWidth: 0, CanvasHeight: 10, Border: 1, ButtonSize: 5},
		{CanvasWidth: 100, CanvasHeight: 10, Border: -1, ButtonSize: 5},
		{CanvasWidth: 100, CanvasHeight: 10, Border: 1, ButtonSize: 0},
		{CanvasWidth: 20, CanvasHeight: 10, Border: 1, ButtonSize: 5},
	}
	for _, l := range bad {
		if err := l.Validate(); err == nil {
			t.Errorf("expected %+v to be rejected", l)
		}
	}
	ok := Layout{CanvasWidth: 29, CanvasHeight: 10, Border: 1, ButtonSize: 5}
	if err := ok.Validate(); err != nil {
		t.Errorf("expected tight layout to validate: %v", err)
	}
}
