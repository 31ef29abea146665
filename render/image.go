package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termgl/vmath"
)

// ImageMode selects how image pixels map onto cells
type ImageMode uint8

const (
	ImageRamp     ImageMode = iota // 1 sample per cell, luminance picks a ramp character
	ImageQuadrant                  // 2x2 samples per cell, thresholded into quadrant blocks
)

// ParseImageMode maps "ramp" or "quadrant" to an ImageMode, "" is ramp
func ParseImageMode(s string) (ImageMode, error) {
	switch s {
	case "", "ramp":
		return ImageRamp, nil
	case "quadrant":
		return ImageQuadrant, nil
	}
	return 0, fmt.Errorf("unknown image mode %q", s)
}

// DefaultRamp orders characters from empty to dense
// The leading space makes dark pixels transparent for Blit
const DefaultRamp = " .:-=+*#%@"

// quadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = lit)
var quadrantChars = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// charAspect compensates for terminal cells being about twice as tall as wide
const charAspect = 0.5

// FromImage samples img into a surface width cells wide, height follows aspect ratio
// Pixels under half opacity become Transparent
func FromImage(img image.Image, width int, mode ImageMode, ramp string) *Surface {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 || width <= 0 {
		return NewSurface(0, 0)
	}
	if ramp == "" {
		ramp = DefaultRamp
	}

	outH := max(vmath.Round(float64(width)*float64(srcH)/float64(srcW)*charAspect), 1)
	s := NewSurface(width, outH)

	switch mode {
	case ImageQuadrant:
		convertQuadrant(img, s)
	default:
		convertRamp(img, s, []rune(ramp))
	}
	return s
}

// convertRamp samples the center of each cell's source region
func convertRamp(img image.Image, s *Surface, ramp []rune) {
	b := img.Bounds()
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			sx, sy := samplePos(b, x, y, s.width, s.height)
			lum, opaque := luminance(img.At(sx, sy))
			if !opaque {
				continue
			}
			idx := vmath.Round(lum * float64(len(ramp)-1))
			s.cells[y][x] = ramp[idx]
		}
	}
}

// convertQuadrant samples a 2x2 grid per cell; a quadrant is lit if opaque and bright
func convertQuadrant(img image.Image, s *Surface) {
	b := img.Bounds()
	gridW, gridH := s.width*2, s.height*2
	offsets := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			pattern := 0
			for i, off := range offsets {
				sx, sy := samplePos(b, x*2+off[0], y*2+off[1], gridW, gridH)
				lum, opaque := luminance(img.At(sx, sy))
				if opaque && lum >= 0.5 {
					pattern |= 1 << i
				}
			}
			s.cells[y][x] = quadrantChars[pattern]
		}
	}
}

// samplePos maps output cell (x, y) of an outW x outH grid to the source pixel at its center
func samplePos(b image.Rectangle, x, y, outW, outH int) (int, int) {
	srcW, srcH := b.Dx(), b.Dy()
	sx := min(b.Min.X+(x*srcW+srcW/2)/outW, b.Max.X-1)
	sy := min(b.Min.Y+(y*srcH+srcH/2)/outH, b.Max.Y-1)
	return sx, sy
}

// luminance returns CIE L* in [0, 1] and whether the pixel is at least half opaque
func luminance(c color.Color) (float64, bool) {
	_, _, _, a := c.RGBA()
	if a < 0x8000 {
		return 0, false
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0, false
	}
	l, _, _ := cf.Clamped().Lab()
	return min(max(l, 0), 1), true
}
