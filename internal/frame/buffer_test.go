package frame

import (
	"bytes"
	"image"
	"testing"
)

func TestPutPixelOffset(t *testing.T) {
	pix := make([]byte, 4*3*4)
	b := NewBuffer(pix, 4, 3)
	b.PutPixel(2, 1, RGB(10, 20, 30))
	i := (2 + 1*4) * 4
	if got := pix[i : i+4]; !bytes.Equal(got, []byte{10, 20, 30, 0xff}) {
		t.Fatalf("unexpected pixel bytes %v", got)
	}
	for j, v := range pix {
		if j >= i && j < i+4 {
			continue
		}
		if v != 0 {
			t.Fatalf("byte %d touched: %d", j, v)
		}
	}
}

func TestPutPixelOutOfRange(t *testing.T) {
	pix := make([]byte, 4*3*4)
	b := NewBuffer(pix, 4, 3)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		b.PutPixel(p.X, p.Y, White)
	}
	if !bytes.Equal(pix, make([]byte, len(pix))) {
		t.Fatal("out of range write modified the buffer")
	}
}

func TestPutPixelShortSlice(t *testing.T) {
	pix := make([]byte, 6)
	b := NewBuffer(pix, 4, 3)
	b.PutPixel(3, 2, White)
	b.PutPixel(1, 0, White)
	b.Clear(Red)
	if pix[0] != 0xff || pix[3] != 0xff {
		t.Fatalf("expected first pixel cleared, got %v", pix)
	}
}

func TestClear(t *testing.T) {
	pix := make([]byte, 2*2*4)
	NewBuffer(pix, 2, 2).Clear(Blue)
	want := bytes.Repeat([]byte{0, 0, 0xff, 0xff}, 4)
	if !bytes.Equal(pix, want) {
		t.Fatalf("got %v want %v", pix, want)
	}
}

func TestLendRect(t *testing.T) {
	pix := make([]byte, 10*10*4)
	b := NewBuffer(pix, 10, 10)
	v := b.Lend(RectAt(2, 2, 3, 3))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v.PutPixel(x, y, White)
		}
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			written := pix[(x+y*10)*4+3] == 0xff
			if inside != written {
				t.Fatalf("pixel (%d,%d): inside=%v written=%v", x, y, inside, written)
			}
		}
	}
}

func TestRegions(t *testing.T) {
	outer := RectAt(0, 0, 10, 10)
	inner := RectAt(3, 3, 2, 2)
	ex := Exclude{Outer: outer, Inner: inner}
	if !ex.Contains(0, 0) || ex.Contains(3, 3) || ex.Contains(10, 0) {
		t.Error("exclusion region gave unexpected containment")
	}
	diag := RegionFunc(func(x, y int) bool { return x == y })
	v := NewBuffer(make([]byte, 16*4), 4, 4).Lend(diag)
	if !v.Contains(2, 2) || v.Contains(2, 1) {
		t.Error("predicate region gave unexpected containment")
	}
	var nilView View
	if nilView.Contains(0, 0) {
		t.Error("view without region must reject all pixels")
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(Red.NRGBA())
	if c != Red {
		t.Fatalf("got %v", c)
	}
	if Red.Hex() != "#FF0000" {
		t.Fatalf("unexpected hex %s", Red.Hex())
	}
}
