package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// tcellTerm implements Terminal on a tcell.Screen
// The cursor is virtual: Emit writes at the tracked position and advances one column
type tcellTerm struct {
	screen tcell.Screen
	x, y   int
}

// NewTcell wraps an initialized tcell screen
// Content becomes visible on Flush (screen.Show)
func NewTcell(screen tcell.Screen) Terminal {
	return &tcellTerm{screen: screen}
}

func (t *tcellTerm) MoveCursor(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	t.x, t.y = x, y
}

func (t *tcellTerm) Emit(r rune, style string) {
	t.screen.SetContent(t.x, t.y, r, nil, TcellStyle(style))
	t.x++
}

func (t *tcellTerm) ClearScreen() {
	t.screen.Clear()
	t.x, t.y = 0, 0
}

func (t *tcellTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerm) SetCursorVisible(visible bool) {
	if visible {
		t.screen.ShowCursor(t.x, t.y)
		return
	}
	t.screen.HideCursor()
}

func (t *tcellTerm) Flush() error {
	t.screen.Show()
	return nil
}

// TcellStyle converts a style token into a tcell.Style
// Empty or unparseable tokens map to tcell.StyleDefault
func TcellStyle(token string) tcell.Style {
	style := tcell.StyleDefault
	if token == "" {
		return style
	}
	s, ok := ParseStyle(token)
	if !ok {
		return style
	}

	if c, ok := tcellColor(s.Fg); ok {
		style = style.Foreground(c)
	}
	if c, ok := tcellColor(s.Bg); ok {
		style = style.Background(c)
	}

	if s.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if s.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	if s.Attrs&AttrItalic != 0 {
		style = style.Italic(true)
	}
	if s.Attrs&AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if s.Attrs&AttrBlink != 0 {
		style = style.Blink(true)
	}
	if s.Attrs&AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}

func tcellColor(c Color) (tcell.Color, bool) {
	switch c.Type {
	case ColorPalette:
		return tcell.PaletteColor(int(c.Index)), true
	case ColorRGB:
		return tcell.NewRGBColor(int32(c.RGB.R), int32(c.RGB.G), int32(c.RGB.B)), true
	}
	return tcell.ColorDefault, false
}
