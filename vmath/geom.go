package vmath

import "math"

// Distance returns the Euclidean distance between two cells
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return math.Sqrt(dx*dx + dy*dy)
}

// Round rounds half away from zero to the nearest cell index
// All rasterized coordinates go through this so every front-end agrees
func Round(f float64) int {
	return int(math.Round(f))
}

// Abs returns the absolute value of an int
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// UnitStep returns the per-step increment and step count for walking from
// (x1, y1) to (x2, y2) in unit-length increments
// A zero-length segment returns zero increments and zero steps
func UnitStep(x1, y1, x2, y2 int) (ux, uy float64, steps int) {
	d := Distance(x1, y1, x2, y2)
	if d == 0 {
		return 0, 0, 0
	}
	return float64(x2-x1) / d, float64(y2-y1) / d, Round(d)
}
