// Package draw provides immediate-mode drawing straight onto a terminal.
//
// Plain writes unstyled runes and only rejects negative coordinates; it never
// queries the terminal size, so writes past the right or bottom edge reach the
// terminal and are clipped (or wrapped) by it. Colored checks every write
// against the live terminal size and drops writes whose style token is not an
// escape sequence.
//
// Both share raster.Rasterizer, so shapes are pixel-identical to those drawn
// into a render.Surface. Output is buffered until Flush.
package draw
