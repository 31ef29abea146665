package draw

import (
	"github.com/lixenwraith/termgl/core"
	"github.com/lixenwraith/termgl/terminal"
)

// plainSink places unstyled runes at any non-negative coordinate
type plainSink struct {
	term terminal.Terminal
}

func (s plainSink) Put(x, y int, g core.Glyph) bool {
	if x < 0 || y < 0 {
		return false
	}
	s.term.MoveCursor(x, y)
	s.term.Emit(g.Rune, "")
	return true
}

// coloredSink places styled runes inside the current terminal size
type coloredSink struct {
	term terminal.Terminal
}

func (s coloredSink) Put(x, y int, g core.Glyph) bool {
	w, h := s.term.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	if !terminal.IsStyle(g.Style) {
		return false
	}
	s.term.MoveCursor(x, y)
	s.term.Emit(g.Rune, g.Style)
	return true
}
