//go:build !unix

package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback for platforms without TIOCGWINSZ; x/term handles the size query
type stdBackend struct {
	fd int
}

func newStdoutBackend() (Backend, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	return &stdBackend{fd: fd}, nil
}

func (b *stdBackend) Size() (int, int) {
	w, h, err := term.GetSize(b.fd)
	if err != nil {
		return 0, 0
	}
	return w, h
}

func (b *stdBackend) Write(p []byte) error {
	_, err := os.Stdout.Write(p)
	return err
}
