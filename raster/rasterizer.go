package raster

import (
	"unicode/utf8"

	"github.com/lixenwraith/termgl/core"
	"github.com/lixenwraith/termgl/vmath"
)

// Rasterizer draws primitives through a sink
// Small value type, safe to copy
type Rasterizer struct {
	sink Sink
}

// New creates a rasterizer writing to s
func New(s Sink) Rasterizer {
	return Rasterizer{sink: s}
}

// Sink returns the underlying sink
func (r Rasterizer) Sink() Sink {
	return r.sink
}

// Pixel writes g at (x, y), returns true if the sink placed it
func (r Rasterizer) Pixel(x, y int, g core.Glyph) bool {
	return r.sink.Put(x, y, g)
}

// StraightLine draws |length| cells from (x, y) stepping in dir
// Negative length reverses the step, producing the mirror image of the positive case
func (r Rasterizer) StraightLine(x, y, length int, dir core.Direction, g core.Glyph) {
	addx, addy := dir.Step()
	if length < 0 {
		length = -length
		addx, addy = -addx, -addy
	}
	for i := 0; i < length; i++ {
		r.sink.Put(x, y, g)
		x += addx
		y += addy
	}
}

// Line draws a segment from (x1, y1) to (x2, y2), both endpoints inclusive
func (r Rasterizer) Line(x1, y1, x2, y2 int, g core.Glyph) {
	// Axis-aligned: signed delta relies on StraightLine sign flip for decreasing coordinates
	if x1 == x2 {
		r.StraightLine(x1, y1, y2-y1, core.DirDown, g)
		r.sink.Put(x2, y2, g)
		return
	}
	if y1 == y2 {
		r.StraightLine(x1, y1, x2-x1, core.DirRight, g)
		r.sink.Put(x2, y2, g)
		return
	}
	r.walk(x1, y1, x2, y2, g)
}

// walk steps along the unit vector with float accumulation, rounding each sample
func (r Rasterizer) walk(x1, y1, x2, y2 int, g core.Glyph) {
	ux, uy, steps := vmath.UnitStep(x1, y1, x2, y2)
	fx, fy := float64(x1), float64(y1)
	for i := 0; i < steps; i++ {
		r.sink.Put(vmath.Round(fx), vmath.Round(fy), g)
		fx += ux
		fy += uy
	}
	// Accumulated rounding may already have reached it; double write is harmless
	r.sink.Put(x2, y2, g)
}

// Rectangle draws a width x height rectangle with top-left at (x, y)
// Outline draws each corner once; fill draws width columns of height cells
func (r Rasterizer) Rectangle(x, y, width, height int, g core.Glyph, fill bool) {
	if width <= 0 || height <= 0 {
		return
	}
	if fill {
		for i := 0; i < width; i++ {
			r.StraightLine(x+i, y, height, core.DirDown, g)
		}
		return
	}

	r.StraightLine(x, y, width, core.DirRight, g)
	if height > 1 {
		r.StraightLine(x, y+height-1, width, core.DirRight, g)
	}

	side := max(height-2, 0)
	r.StraightLine(x, y+1, side, core.DirDown, g)
	if width > 1 {
		r.StraightLine(x+width-1, y+1, side, core.DirDown, g)
	}
}

// Ellipse draws the parametric ellipse centered at (h, k) with radii (a, b)
// Columns near the horizontal extremes step visibly; accepted approximation
func (r Rasterizer) Ellipse(h, k, a, b int, g core.Glyph, fill bool) {
	if a < 0 || b < 0 {
		return
	}
	if a == 0 {
		r.StraightLine(h, k-b, 2*b+1, core.DirDown, g)
		return
	}

	n := vmath.EllipseColumns(a)
	for i := 0; i < n; i++ {
		x, y := vmath.EllipseLower(h, k, a, b, i)
		if fill {
			span := 2 * vmath.Abs(k-y)
			r.StraightLine(x, y, span+1, core.DirUp, g)
			continue
		}
		r.sink.Put(x, y, g)
		r.sink.Put(x, vmath.Mirror(k, y), g)
	}
}

// Polygon draws a closed loop through points
// A single point draws that cell, no points draws nothing
func (r Rasterizer) Polygon(points []core.Point, g core.Glyph) {
	for i, p := range points {
		next := points[(i+1)%len(points)]
		r.Line(p.X, p.Y, next.X, next.Y, g)
	}
}

// Text writes each rune of s left-to-right from (x, y), no wrapping
func (r Rasterizer) Text(x, y int, s string, style string) {
	i := 0
	for _, ch := range s {
		r.sink.Put(x+i, y, core.Glyph{Rune: ch, Style: style})
		i++
	}
}

// TextAligned writes s anchored at (x, y) according to align
// Center shifts left by runeCount/2 (truncating), right by runeCount
func (r Rasterizer) TextAligned(x, y int, s string, align core.TextAlignment, style string) {
	r.Text(x-align.Offset(utf8.RuneCountInString(s)), y, s, style)
}
