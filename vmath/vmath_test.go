package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, -1},
		{-2.5, -3},
		{0.49, 0},
		{-0.49, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in), "Round(%v)", tt.in)
	}
}

func TestUnitStep(t *testing.T) {
	ux, uy, steps := UnitStep(0, 0, 3, 4)
	assert.InDelta(t, 0.6, ux, 1e-9)
	assert.InDelta(t, 0.8, uy, 1e-9)
	assert.Equal(t, 5, steps)

	ux, uy, steps = UnitStep(2, 2, 2, 2)
	assert.Zero(t, ux)
	assert.Zero(t, uy)
	assert.Zero(t, steps)
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, 0, Abs(0))
}

func TestEllipseSampling(t *testing.T) {
	assert.Equal(t, 7, EllipseColumns(3))
	assert.Equal(t, 1, EllipseColumns(0))
	assert.Equal(t, 0, EllipseColumns(-1))

	// Center column reaches the full vertical radius
	x, y := EllipseLower(10, 5, 3, 2, 3)
	assert.Equal(t, 10, x)
	assert.Equal(t, 7, y)
	assert.Equal(t, 3, Mirror(5, y))

	// Extreme columns sit on the center row
	x, y = EllipseLower(10, 5, 3, 2, 0)
	assert.Equal(t, 7, x)
	assert.Equal(t, 5, y)
}
