package render

import "github.com/lixenwraith/termgl/core"

// Blit overlays other onto s with other's top-left at (x, y)
// Transparent cells of other are skipped, everything else overwrites;
// cells landing outside s are dropped like any DrawPixel
func (s *Surface) Blit(x, y int, other *Surface) {
	if other == nil {
		return
	}
	if other == s {
		// Overlapping self-blit reads from the pre-blit grid
		other = s.Clone()
	}

	// Only the overlap can produce writes
	dst := s.Bounds().Intersect(core.Area{X: x, Y: y, Width: other.width, Height: other.height})
	if dst.Empty() {
		return
	}
	for row := dst.Y; row < dst.Y+dst.Height; row++ {
		src := other.cells[row-y]
		for col := dst.X; col < dst.X+dst.Width; col++ {
			c := src[col-x]
			if c == Transparent {
				continue
			}
			s.DrawPixel(col, row, c)
		}
	}
}
