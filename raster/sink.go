package raster

import "github.com/lixenwraith/termgl/core"

// Sink commits a rasterized cell
// Put returns false and does nothing if (x, y) is not currently addressable
type Sink interface {
	Put(x, y int, g core.Glyph) bool
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(x, y int, g core.Glyph) bool

// Put implements Sink
func (f SinkFunc) Put(x, y int, g core.Glyph) bool {
	return f(x, y, g)
}

// Offset returns a sink that translates every write by (dx, dy) before forwarding
func Offset(s Sink, dx, dy int) Sink {
	if dx == 0 && dy == 0 {
		return s
	}
	return SinkFunc(func(x, y int, g core.Glyph) bool {
		return s.Put(x+dx, y+dy, g)
	})
}

// Clip returns a sink that drops writes outside area before forwarding
func Clip(s Sink, area core.Area) Sink {
	return SinkFunc(func(x, y int, g core.Glyph) bool {
		if !area.Contains(x, y) {
			return false
		}
		return s.Put(x, y, g)
	})
}
