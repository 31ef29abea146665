package draw

import (
	"github.com/lixenwraith/termgl/core"
	"github.com/lixenwraith/termgl/raster"
	"github.com/lixenwraith/termgl/terminal"
)

// Colored draws styled characters on a terminal, clipped to its live size
// Every method takes a style token (terminal.Red, terminal.RGBCode(...));
// a token that is empty or does not start with ESC drops the write
type Colored struct {
	term terminal.Terminal
	r    raster.Rasterizer
}

// NewColored creates a colored front-end over t
func NewColored(t terminal.Terminal) *Colored {
	return &Colored{
		term: t,
		r:    raster.New(coloredSink{term: t}),
	}
}

// Sink exposes the underlying sink for callers composing their own shapes
func (c *Colored) Sink() raster.Sink {
	return c.r.Sink()
}

// Pixel draws ch at (x, y), false when outside the terminal or style is invalid
func (c *Colored) Pixel(x, y int, ch rune, style string) bool {
	return c.r.Pixel(x, y, core.Styled(ch, style))
}

func (c *Colored) StraightLine(x, y, length int, dir core.Direction, ch rune, style string) {
	c.r.StraightLine(x, y, length, dir, core.Styled(ch, style))
}

func (c *Colored) Rectangle(x, y, width, height int, ch rune, style string, fill bool) {
	c.r.Rectangle(x, y, width, height, core.Styled(ch, style), fill)
}

func (c *Colored) Line(x1, y1, x2, y2 int, ch rune, style string) {
	c.r.Line(x1, y1, x2, y2, core.Styled(ch, style))
}

func (c *Colored) Ellipse(h, k, a, b int, ch rune, style string, fill bool) {
	c.r.Ellipse(h, k, a, b, core.Styled(ch, style), fill)
}

func (c *Colored) Polygon(points []core.Point, ch rune, style string) {
	c.r.Polygon(points, core.Styled(ch, style))
}

func (c *Colored) Box(x, y, width, height int, line raster.LineType, style string) {
	c.r.Box(x, y, width, height, line, style)
}

func (c *Colored) Text(x, y int, s, style string) {
	c.r.Text(x, y, s, style)
}

func (c *Colored) TextAligned(x, y int, s string, align core.TextAlignment, style string) {
	c.r.TextAligned(x, y, s, align, style)
}

// Clear clears the terminal and homes the cursor
func (c *Colored) Clear() {
	c.term.ClearScreen()
}

// Flush pushes buffered output to the terminal
func (c *Colored) Flush() error {
	return c.term.Flush()
}
