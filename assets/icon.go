// Package assets provides the application icon. The icon is drawn at start
// up rather than embedded so any size can be produced.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sort"
	"sync"
)

// iconSizes are the sizes desktops usually ask for.
var iconSizes = []int{16, 32, 48, 64, 128}

var (
	iconMu   sync.Mutex
	pngImage = map[int]*image.RGBA{}
	pngData  = map[int][]byte{}
)

var (
	iconPaper  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	iconFrame  = color.RGBA{0x80, 0x80, 0x80, 0xff}
	iconStroke = color.RGBA{0x00, 0x00, 0x00, 0xff}
	iconChips  = []color.RGBA{
		{0xff, 0x00, 0x00, 0xff},
		{0x00, 0x00, 0x00, 0xff},
		{0x00, 0xff, 0x00, 0xff},
		{0x00, 0x00, 0xff, 0xff},
	}
)

// IconImage returns the icon drawn at size x size pixels.
func IconImage(size int) (image.Image, error) {
	if size < 8 {
		return nil, fmt.Errorf("icon %dpx too small", size)
	}
	iconMu.Lock()
	defer iconMu.Unlock()
	if img, ok := pngImage[size]; ok {
		return img, nil
	}
	img := drawIcon(size)
	pngImage[size] = img
	return img, nil
}

// IconPNG returns a copy of the PNG encoding of the icon.
func IconPNG(size int) ([]byte, error) {
	img, err := IconImage(size)
	if err != nil {
		return nil, err
	}
	iconMu.Lock()
	defer iconMu.Unlock()
	data, ok := pngData[size]
	if !ok {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
		data = buf.Bytes()
		pngData[size] = data
	}
	return append([]byte(nil), data...), nil
}

// IconSizes lists the conventional icon sizes in ascending order.
func IconSizes() []int {
	out := append([]int(nil), iconSizes...)
	sort.Ints(out)
	return out
}

// drawIcon paints a framed sheet with a diagonal stroke over a row of
// colour chips, a miniature of the paint window.
func drawIcon(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	border := max(size/16, 1)
	draw.Draw(img, img.Bounds(), image.NewUniform(iconFrame), image.Point{}, draw.Src)

	chipH := size / 5
	sheet := image.Rect(border, border, size-border, size-2*border-chipH)
	draw.Draw(img, sheet, image.NewUniform(iconPaper), image.Point{}, draw.Src)

	chipW := (size - border*(len(iconChips)+1)) / len(iconChips)
	y := sheet.Max.Y + border
	for i, c := range iconChips {
		x := border + i*(chipW+border)
		draw.Draw(img, image.Rect(x, y, x+chipW, y+chipH), image.NewUniform(c), image.Point{}, draw.Src)
	}

	thick := max(size/16, 1)
	w, h := sheet.Dx(), sheet.Dy()
	for i := 0; i < w; i++ {
		j := i * h / w
		for t := 0; t < thick; t++ {
			img.SetRGBA(sheet.Min.X+i, min(sheet.Min.Y+j+t, sheet.Max.Y-1), iconStroke)
		}
	}
	return img
}
