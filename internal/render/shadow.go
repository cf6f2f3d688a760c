package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow behind the frame when the window
// is larger than the scaled frame.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns a soft shadow offset down and to the right.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  6,
		Offset:  image.Pt(4, 4),
		Opacity: 0.5,
	}
}

// shadowCache keeps the blurred mask for the last frame size, since it only
// changes when the window is resized.
type shadowCache struct {
	size image.Point
	opts ShadowOptions
	mask *image.Gray
}

func (c *shadowCache) draw(dst *image.RGBA, clip, frame image.Rectangle, opts ShadowOptions) {
	if opts.Opacity <= 0 || frame.Empty() {
		return
	}
	if c.mask == nil || c.size != frame.Size() || c.opts != opts {
		c.mask = shadowMask(frame.Size(), opts.Radius)
		c.size = frame.Size()
		c.opts = opts
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := max(opts.Radius, 0)
	r := image.Rectangle{Min: frame.Min.Sub(image.Pt(radius, radius)).Add(opts.Offset)}
	r.Max = r.Min.Add(c.mask.Bounds().Size())
	alpha := uint8(opacity*255 + 0.5)
	draw.DrawMask(dst, r.Intersect(clip), image.NewUniform(color.RGBA{0, 0, 0, alpha}), image.Point{},
		c.mask, r.Intersect(clip).Min.Sub(r.Min), draw.Over)
}

// shadowMask returns a size-sized opaque block padded by radius on every side
// and box blurred.
func shadowMask(size image.Point, radius int) *image.Gray {
	radius = max(radius, 0)
	mask := image.NewGray(image.Rectangle{Max: size.Add(image.Pt(2*radius, 2*radius))})
	inner := image.Rectangle{Min: image.Pt(radius, radius), Max: image.Pt(radius, radius).Add(size)}
	draw.Draw(mask, inner, image.NewUniform(color.Gray{Y: 0xff}), image.Point{}, draw.Src)
	return blurGray(mask, radius)
}

func blurGray(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		out := image.NewGray(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	tmp := image.NewGray(bounds)
	dst := image.NewGray(bounds)

	prefix := make([]int, max(w, h)+1)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(row[x])
		}
		for x := 0; x < w; x++ {
			x0, x1 := max(x-radius, 0), min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0, y1 := max(y-radius, 0), min(y+radius, h-1)
			dst.Pix[y*dst.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
		}
	}
	return dst
}
