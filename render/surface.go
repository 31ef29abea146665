package render

import (
	"strings"

	"github.com/lixenwraith/termgl/core"
	"github.com/lixenwraith/termgl/raster"
)

// Transparent is the blank cell value; Blit skips it
const Transparent = ' '

// Surface is a fixed-size row-major character grid
// Every row holds exactly width runes; not safe for concurrent mutation
type Surface struct {
	width  int
	height int
	cells  [][]rune
}

// NewSurface creates a surface filled with spaces, negative dimensions clamp to zero
func NewSurface(width, height int) *Surface {
	width = max(width, 0)
	height = max(height, 0)
	s := &Surface{
		width:  width,
		height: height,
		cells:  make([][]rune, height),
	}
	for y := range s.cells {
		s.cells[y] = make([]rune, width)
	}
	s.Fill(Transparent)
	return s
}

// Width returns the surface width
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height
func (s *Surface) Height() int {
	return s.height
}

// Bounds returns the addressable area anchored at the origin
func (s *Surface) Bounds() core.Area {
	return core.Area{Width: s.width, Height: s.height}
}

// Raw returns the underlying grid for read access
// Callers must not resize rows; mutate through the Draw methods
func (s *Surface) Raw() [][]rune {
	return s.cells
}

// inBounds returns true if (x, y) is addressable
func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Cell returns the rune at (x, y), false if out of bounds
func (s *Surface) Cell(x, y int) (rune, bool) {
	if !s.inBounds(x, y) {
		return 0, false
	}
	return s.cells[y][x], true
}

// Row returns row y as a string, empty if out of bounds
func (s *Surface) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	return string(s.cells[y])
}

// String returns all rows joined by newlines, no trailing newline
func (s *Surface) String() string {
	var sb strings.Builder
	for y, row := range s.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// Clone returns an independent copy
func (s *Surface) Clone() *Surface {
	c := &Surface{
		width:  s.width,
		height: s.height,
		cells:  make([][]rune, s.height),
	}
	for y, row := range s.cells {
		c.cells[y] = append([]rune(nil), row...)
	}
	return c
}

// Fill replaces every cell with c
func (s *Surface) Fill(c rune) {
	for _, row := range s.cells {
		for x := range row {
			row[x] = c
		}
	}
}

// Clear resets every cell to Transparent
func (s *Surface) Clear() {
	s.Fill(Transparent)
}

// Put implements raster.Sink; style is dropped since cells hold runes only
func (s *Surface) Put(x, y int, g core.Glyph) bool {
	if !s.inBounds(x, y) {
		return false
	}
	s.cells[y][x] = g.Rune
	return true
}

// rasterizer returns a rasterizer targeting this surface
func (s *Surface) rasterizer() raster.Rasterizer {
	return raster.New(s)
}

// DrawPixel draws c at (x, y), returns true if the cell was in bounds
func (s *Surface) DrawPixel(x, y int, c rune) bool {
	return s.Put(x, y, core.Plain(c))
}

// DrawStraightLine draws |length| cells from (x, y) in dir, negative length mirrors
func (s *Surface) DrawStraightLine(x, y, length int, dir core.Direction, c rune) {
	s.rasterizer().StraightLine(x, y, length, dir, core.Plain(c))
}

// DrawRectangle draws an outlined or filled rectangle with top-left at (x, y)
func (s *Surface) DrawRectangle(x, y, width, height int, c rune, fill bool) {
	s.rasterizer().Rectangle(x, y, width, height, core.Plain(c), fill)
}

// DrawLine draws a segment from (x1, y1) to (x2, y2) inclusive
func (s *Surface) DrawLine(x1, y1, x2, y2 int, c rune) {
	s.rasterizer().Line(x1, y1, x2, y2, core.Plain(c))
}

// DrawEllipse draws an ellipse centered at (h, k) with radii (a, b)
func (s *Surface) DrawEllipse(h, k, a, b int, c rune, fill bool) {
	s.rasterizer().Ellipse(h, k, a, b, core.Plain(c), fill)
}

// DrawPolygon draws a closed loop through points
func (s *Surface) DrawPolygon(points []core.Point, c rune) {
	s.rasterizer().Polygon(points, core.Plain(c))
}

// DrawText writes text left-to-right from (x, y)
func (s *Surface) DrawText(x, y int, text string) {
	s.rasterizer().Text(x, y, text, "")
}

// DrawTextAligned writes text anchored at (x, y) per align
func (s *Surface) DrawTextAligned(x, y int, text string, align core.TextAlignment) {
	s.rasterizer().TextAligned(x, y, text, align, "")
}

// DrawBox draws a frame of box drawing characters with top-left at (x, y)
func (s *Surface) DrawBox(x, y, width, height int, line raster.LineType) {
	s.rasterizer().Box(x, y, width, height, line, "")
}
