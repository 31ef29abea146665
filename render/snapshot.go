package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// WritePNG renders the grid as a PNG, one 7x13 glyph box per cell
// Transparent cells show bg; runes outside the font's ASCII range render blank
func (s *Surface) WritePNG(w io.Writer, fg, bg color.Color) error {
	face := basicfont.Face7x13
	cw, ch := face.Advance, face.Height

	img := image.NewRGBA(image.Rect(0, 0, s.width*cw, s.height*ch))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
	}
	for y, row := range s.cells {
		for x, c := range row {
			if c == Transparent {
				continue
			}
			d.Dot = fixed.P(x*cw, y*ch+face.Ascent)
			d.DrawString(string(c))
		}
	}
	return png.Encode(w, img)
}
