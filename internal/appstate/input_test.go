package appstate

import (
	"fmt"
	"image"
	"reflect"
	"testing"

	"golang.org/x/mobile/event/mouse"
)

type pointerLog []string

func (l *pointerLog) Press(p image.Point)         { *l = append(*l, fmt.Sprintf("press %d,%d", p.X, p.Y)) }
func (l *pointerLog) Hold(prev, curr image.Point) { *l = append(*l, fmt.Sprintf("hold %d,%d-%d,%d", prev.X, prev.Y, curr.X, curr.Y)) }
func (l *pointerLog) Release(p image.Point)       { *l = append(*l, fmt.Sprintf("release %d,%d", p.X, p.Y)) }

func scaledInput() *Input {
	return &Input{Placed: image.Rect(10, 20, 10+202*2, 20+108*2), Scale: 2}
}

func TestToFrame(t *testing.T) {
	in := scaledInput()
	cases := []struct {
		x, y   float32
		want   image.Point
		inside bool
	}{
		{10, 20, image.Pt(0, 0), true},
		{11.9, 21.5, image.Pt(0, 0), true},
		{12, 22, image.Pt(1, 1), true},
		{413, 235, image.Pt(201, 107), true},
		{9, 20, image.Pt(0, 0), false},
		{5, 5, image.Pt(0, 0), false},
		{1000, 1000, image.Pt(201, 107), false},
	}
	for _, c := range cases {
		got, inside := in.ToFrame(c.x, c.y)
		if got != c.want || inside != c.inside {
			t.Errorf("ToFrame(%v,%v) = %v,%v want %v,%v", c.x, c.y, got, inside, c.want, c.inside)
		}
	}
}

func TestHandleSequence(t *testing.T) {
	in := scaledInput()
	var got pointerLog
	left := func(dir mouse.Direction, x, y float32) bool {
		return in.Handle(mouse.Event{X: x, Y: y, Button: mouse.ButtonLeft, Direction: dir}, &got)
	}

	if left(mouse.DirNone, 50, 50) {
		t.Error("motion without a press should be ignored")
	}
	if left(mouse.DirPress, 0, 0) {
		t.Error("press outside the frame should be ignored")
	}
	if in.Handle(mouse.Event{X: 50, Y: 50, Button: mouse.ButtonRight, Direction: mouse.DirPress}, &got) {
		t.Error("right button should be ignored")
	}
	if !left(mouse.DirPress, 30, 40) {
		t.Fatal("press inside the frame should be handled")
	}
	if left(mouse.DirNone, 31, 41) {
		t.Error("motion within the same frame pixel should not hold")
	}
	left(mouse.DirNone, 34, 40)
	left(mouse.DirNone, 2000, 40)
	left(mouse.DirRelease, 36, 44)
	if in.Down() {
		t.Error("release should end the drag")
	}
	if left(mouse.DirRelease, 36, 44) {
		t.Error("second release should be ignored")
	}

	want := pointerLog{
		"press 10,10",
		"hold 10,10-12,10",
		"hold 12,10-201,10",
		"hold 201,10-13,12",
		"release 13,12",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestHandleReleaseInPlace(t *testing.T) {
	in := scaledInput()
	var got pointerLog
	in.Handle(mouse.Event{X: 30, Y: 40, Button: mouse.ButtonLeft, Direction: mouse.DirPress}, &got)
	in.Handle(mouse.Event{X: 31, Y: 41, Button: mouse.ButtonLeft, Direction: mouse.DirRelease}, &got)
	if want := (pointerLog{"press 10,10", "release 10,10"}); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCancel(t *testing.T) {
	in := scaledInput()
	var got pointerLog
	in.Handle(mouse.Event{X: 30, Y: 40, Button: mouse.ButtonLeft, Direction: mouse.DirPress}, &got)
	in.Cancel()
	if in.Handle(mouse.Event{X: 60, Y: 60, Button: mouse.ButtonLeft, Direction: mouse.DirRelease}, &got) {
		t.Fatal("release after cancel should be ignored")
	}
	if len(got) != 1 {
		t.Fatalf("unexpected events %v", got)
	}
}
