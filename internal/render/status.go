package render

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// StatusHeight is the height in window pixels of the status bar.
const StatusHeight = 18

var statusFace font.Face = basicfont.Face7x13

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("parse font: %v", err)
		return
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 12, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("new face: %v", err)
		return
	}
	statusFace = face
}

// Status is the text shown under the frame.
type Status struct {
	Tool    string
	Color   color.RGBA
	Message string // replaces the tool line while set
}

// StatusBar draws st into r.
func (p *Presenter) StatusBar(dst *image.RGBA, r image.Rectangle, st Status) {
	draw.Draw(dst, r, image.NewUniform(p.Theme.StatusBackground), image.Point{}, draw.Src)
	if r.Empty() {
		return
	}
	ascent := statusFace.Metrics().Ascent.Ceil()
	baseline := r.Min.Y + (r.Dy()+ascent)/2 - 1

	x := r.Min.X + 4
	if st.Message != "" {
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(p.Theme.StatusAccent), Face: statusFace, Dot: fixed.P(x, baseline)}
		d.DrawString(st.Message)
		return
	}

	chip := image.Rect(x, r.Min.Y+3, x+r.Dy()-6, r.Max.Y-3)
	if !chip.Empty() {
		draw.Draw(dst, chip, image.NewUniform(p.Theme.StatusSwatchRing), image.Point{}, draw.Src)
		draw.Draw(dst, chip.Inset(1), image.NewUniform(st.Color), image.Point{}, draw.Src)
		x = chip.Max.X + 6
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(p.Theme.StatusText), Face: statusFace, Dot: fixed.P(x, baseline)}
	d.DrawString(st.Tool)
}
