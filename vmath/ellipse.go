package vmath

import "math"

// Ellipse column sampling for the parametric terminal ellipse
// The curve is sampled once per column across [h-a, h+a]; no Bresenham midpoint

// EllipseColumns returns the number of sampled columns for horizontal radius a
func EllipseColumns(a int) int {
	if a < 0 {
		return 0
	}
	return 2*a + 1
}

// EllipseLower returns the column x and rounded lower-boundary row for sample i
// of the ellipse centered at (h, k) with radii (a, b), a > 0
// The upper boundary is the vertical mirror 2k - y
func EllipseLower(h, k, a, b, i int) (x, y int) {
	x = h - a + i
	dx := x - h
	inside := math.Abs(float64(a*a - dx*dx))
	fy := float64(b)/float64(a)*math.Sqrt(inside) + float64(k)
	return x, Round(fy)
}

// Mirror reflects row y about the center row k
func Mirror(k, y int) int {
	return 2*k - y
}
