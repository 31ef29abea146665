// Package raster converts drawing primitives into individual cell writes.
//
// Every primitive goes through a single Sink capability, so a buffer and a live
// terminal share the same numeric rules:
//   - rounding is half away from zero (vmath.Round)
//   - straight lines with a negative length mirror the positive case
//   - line endpoints are always written explicitly
//   - out-of-range cells are dropped by the sink, never reported as errors
//
// Usage:
//
//	r := raster.New(sink)
//	r.Rectangle(1, 1, 7, 3, core.Plain('#'), false)
//	r.Line(1, 1, 9, 3, core.Styled('*', terminal.Red))
package raster
