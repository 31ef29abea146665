package terminal

import (
	"io"
	"sync"
)

// Backend abstracts where terminal bytes go and how big the far end is
// Implementations: stdout (unix), any io.Writer with a fixed or updatable size
type Backend interface {
	// Size returns the current dimensions in cells, zero if unknown
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error
}

// WriterBackend sends output to an io.Writer with an externally managed size
// Used for pipes, tests and remote sessions where the size arrives out of band
type WriterBackend struct {
	w io.Writer

	mu     sync.Mutex
	width  int
	height int
}

// NewWriterBackend creates a backend of the given dimensions writing to w
func NewWriterBackend(w io.Writer, width, height int) *WriterBackend {
	return &WriterBackend{w: w, width: width, height: height}
}

// Size implements Backend
func (b *WriterBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// SetSize updates the reported dimensions, e.g. on a remote window change
func (b *WriterBackend) SetSize(width, height int) {
	b.mu.Lock()
	b.width, b.height = width, height
	b.mu.Unlock()
}

// Write implements Backend
func (b *WriterBackend) Write(p []byte) error {
	_, err := b.w.Write(p)
	return err
}

// backendWriter adapts a Backend to io.Writer for buffering
type backendWriter struct {
	b Backend
}

func (bw backendWriter) Write(p []byte) (int, error) {
	if err := bw.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
