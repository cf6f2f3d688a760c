package frame

// Target is anything that accepts individual pixel writes. Both Buffer and
// View satisfy it, so widgets can draw into either.
type Target interface {
	PutPixel(x, y int, c Color)
}

// Buffer is a write-only view over a tightly packed RGBA pixel slice of a
// fixed width and height. The slice is owned by the caller; a Buffer must not
// be kept after the draw call that created it returns.
type Buffer struct {
	pix    []byte
	width  int
	height int
}

var _ Target = (*Buffer)(nil)

// NewBuffer wraps pix, which should hold width*height*4 bytes.
func NewBuffer(pix []byte, width, height int) *Buffer {
	return &Buffer{pix: pix, width: width, height: height}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// PutPixel writes c at (x, y). Writes outside the buffer are dropped.
func (b *Buffer) PutPixel(x, y int, c Color) {
	i, ok := b.offset(x, y)
	if !ok {
		return
	}
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = 0xff
}

// Clear fills every pixel with c.
func (b *Buffer) Clear(c Color) {
	n := b.width * b.height * 4
	if n > len(b.pix) {
		n = len(b.pix) - len(b.pix)%4
	}
	for i := 0; i < n; i += 4 {
		b.pix[i+0] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		b.pix[i+3] = 0xff
	}
}

// Lend returns a view that only lets writes through where r contains the
// pixel. The view shares the buffer and is only valid while the buffer is.
func (b *Buffer) Lend(r Region) *View {
	return &View{buf: b, region: r}
}

func (b *Buffer) offset(x, y int) (int, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	i := (x + y*b.width) * 4
	if i+4 > len(b.pix) {
		return 0, false
	}
	return i, true
}

// View is a Buffer restricted to a Region.
type View struct {
	buf    *Buffer
	region Region
}

var _ Target = (*View)(nil)

// PutPixel forwards to the underlying buffer when the region accepts (x, y).
func (v *View) PutPixel(x, y int, c Color) {
	if v.region == nil || !v.region.Contains(x, y) {
		return
	}
	v.buf.PutPixel(x, y, c)
}

// Contains reports whether a write at (x, y) would be let through.
func (v *View) Contains(x, y int) bool {
	return v.region != nil && v.region.Contains(x, y)
}
