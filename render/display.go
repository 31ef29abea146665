package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/termgl/terminal"
)

// Display writes each row followed by a newline, top row first
func (s *Surface) Display(w io.Writer) error {
	_, err := s.WriteTo(w)
	return err
}

// WriteTo implements io.WriterTo with the Display format
// The count is what reached w, so it stays accurate when a flush fails midway
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for _, row := range s.cells {
		for _, c := range row {
			if _, err := bw.WriteRune(c); err != nil {
				return cw.n, err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return cw.n, err
		}
	}
	err := bw.Flush()
	return cw.n, err
}

// countingWriter tracks bytes accepted by the underlying writer
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	m, err := c.w.Write(p)
	c.n += int64(m)
	return m, err
}

// Present flushes the grid through a terminal, positioning each row explicitly
// Use where a bare newline does not return the carriage (raw PTYs, alternate screen)
// Style is the token applied to every emitted rune, empty for none
func (s *Surface) Present(t terminal.Terminal, style string) error {
	for row, cells := range s.cells {
		t.MoveCursor(0, row)
		for _, c := range cells {
			t.Emit(c, style)
		}
	}
	return t.Flush()
}
