// Package terminal provides the terminal capability used by immediate-mode drawing.
//
// Features:
//   - Terminal interface: cursor positioning, styled rune emission, clear, size query
//   - ANSI implementation over a pluggable Backend (stdout, any io.Writer)
//   - tcell implementation for screens managed by tcell
//   - Style tokens: 4-bit, 8-bit and 24-bit SGR sequences, hex colors, 256-color downgrade
//
// The package emits direct ANSI sequences and never consults terminfo.
// Cursor coordinates are 0-indexed at the API and 1-based on the wire.
package terminal
