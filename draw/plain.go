package draw

import (
	"github.com/lixenwraith/termgl/core"
	"github.com/lixenwraith/termgl/raster"
	"github.com/lixenwraith/termgl/terminal"
)

// Plain draws unstyled characters directly on a terminal
type Plain struct {
	term terminal.Terminal
	r    raster.Rasterizer
}

// NewPlain creates a plain front-end over t
func NewPlain(t terminal.Terminal) *Plain {
	return &Plain{
		term: t,
		r:    raster.New(plainSink{term: t}),
	}
}

// Sink exposes the underlying sink for callers composing their own shapes
func (p *Plain) Sink() raster.Sink {
	return p.r.Sink()
}

// Pixel draws c at (x, y), false only for negative coordinates
func (p *Plain) Pixel(x, y int, c rune) bool {
	return p.r.Pixel(x, y, core.Plain(c))
}

func (p *Plain) StraightLine(x, y, length int, dir core.Direction, c rune) {
	p.r.StraightLine(x, y, length, dir, core.Plain(c))
}

func (p *Plain) Rectangle(x, y, width, height int, c rune, fill bool) {
	p.r.Rectangle(x, y, width, height, core.Plain(c), fill)
}

func (p *Plain) Line(x1, y1, x2, y2 int, c rune) {
	p.r.Line(x1, y1, x2, y2, core.Plain(c))
}

func (p *Plain) Ellipse(h, k, a, b int, c rune, fill bool) {
	p.r.Ellipse(h, k, a, b, core.Plain(c), fill)
}

func (p *Plain) Polygon(points []core.Point, c rune) {
	p.r.Polygon(points, core.Plain(c))
}

func (p *Plain) Box(x, y, width, height int, line raster.LineType) {
	p.r.Box(x, y, width, height, line, "")
}

func (p *Plain) Text(x, y int, s string) {
	p.r.Text(x, y, s, "")
}

func (p *Plain) TextAligned(x, y int, s string, align core.TextAlignment) {
	p.r.TextAligned(x, y, s, align, "")
}

// Clear clears the terminal and homes the cursor
func (p *Plain) Clear() {
	p.term.ClearScreen()
}

// Flush pushes buffered output to the terminal
func (p *Plain) Flush() error {
	return p.term.Flush()
}
