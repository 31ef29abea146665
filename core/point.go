package core

// Point represents a 2D cell coordinate
// Signed and unbounded: addressability is decided by the sink, not the point
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}
