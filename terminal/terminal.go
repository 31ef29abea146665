package terminal

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sync"
)

// ErrNotTerminal is returned when stdout is not attached to a terminal
var ErrNotTerminal = errors.New("stdout is not a terminal")

// Terminal is the capability immediate-mode drawing writes through
type Terminal interface {
	// MoveCursor positions cursor (0-indexed); negative coordinates are ignored
	MoveCursor(x, y int)

	// Emit writes r at the cursor, wrapped in style when style is non-empty
	Emit(r rune, style string)

	// ClearScreen clears and homes the cursor
	ClearScreen()

	// Size returns current terminal dimensions, zero when nothing is attached
	Size() (width, height int)

	// SetCursorVisible shows/hides cursor
	SetCursorVisible(visible bool)

	// Flush pushes pending output to the backend
	Flush() error
}

// ansiTerm implements Terminal by writing ANSI sequences to a Backend
// Output is buffered until Flush
type ansiTerm struct {
	mu      sync.Mutex
	backend Backend
	writer  *bufio.Writer
	mode    ColorMode
}

// New creates an ANSI terminal over backend
// In ColorMode256, 24-bit style tokens are downgraded before emission
func New(backend Backend, mode ColorMode) Terminal {
	return &ansiTerm{
		backend: backend,
		writer:  bufio.NewWriterSize(backendWriter{b: backend}, 32768),
		mode:    mode,
	}
}

// NewStdout creates an ANSI terminal on the process stdout with detected color mode
func NewStdout() (Terminal, error) {
	b, err := newStdoutBackend()
	if err != nil {
		return nil, err
	}
	return New(b, DetectColorMode()), nil
}

func (t *ansiTerm) MoveCursor(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	t.mu.Lock()
	writeCursorPos(t.writer, x, y)
	t.mu.Unlock()
}

func (t *ansiTerm) Emit(r rune, style string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if style == "" {
		t.writer.WriteRune(r)
		return
	}
	if t.mode == ColorMode256 {
		style = Downgrade(style)
	}
	t.writer.WriteString(style)
	t.writer.WriteRune(r)
	t.writer.Write(csiSGR0)
}

func (t *ansiTerm) ClearScreen() {
	t.mu.Lock()
	t.writer.Write(csiClear)
	t.mu.Unlock()
}

func (t *ansiTerm) Size() (int, int) {
	return t.backend.Size()
}

func (t *ansiTerm) SetCursorVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if visible {
		t.writer.Write(csiCursorShow)
	} else {
		t.writer.Write(csiCursorHide)
	}
}

func (t *ansiTerm) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.writer.Flush()
}

// EmergencyReset restores cursor visibility and default attributes on w
// Safe to call from panic recovery without a Terminal
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
